package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/suhrawardy-med/lifeline/internal/handlers"
	"github.com/suhrawardy-med/lifeline/internal/middleware"
	"github.com/suhrawardy-med/lifeline/internal/models"
	"github.com/suhrawardy-med/lifeline/internal/types"
)

func NewRouter(mediaRoot string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/media", mediaRoot)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/forgot-password", handlers.ForgotPassword)
			auth.POST("/reset-password", handlers.ResetPassword)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.GET("/profile", middleware.AuthMiddleware(), handlers.GetProfile)
			auth.PATCH("/profile", middleware.AuthMiddleware(), handlers.UpdateProfile)
			auth.POST("/change-password", middleware.AuthMiddleware(), handlers.ChangePassword)
		}

		// Public catalog content
		api.GET("/blogs", handlers.ListBlogs)
		api.GET("/blogs/:slug", handlers.GetBlog)
		api.GET("/events", handlers.ListEvents)
		api.GET("/events/upcoming", handlers.UpcomingEvents)
		api.GET("/events/past", handlers.PastEvents)
		api.GET("/events/id/:id", handlers.GetEvent)
		api.GET("/services", handlers.ListAll[models.Service]())
		api.GET("/activities", handlers.ListAll[models.Activity]())
		api.GET("/blood-inventory", handlers.ListAll[models.BloodInventory]())
		api.GET("/vaccine-inventory", handlers.ListAll[models.VaccineInventory]())
		api.GET("/top-donors", handlers.ListAll[models.TopDonor]())
		api.GET("/donors", handlers.ListAll[models.BloodDonor]())
		api.GET("/documents", handlers.ListAll[models.PDFDocument]())
		api.GET("/about", handlers.ListAll[models.About]("Images"))
		api.GET("/achievements", handlers.ListAll[models.Achievement]())
		api.GET("/team-members", handlers.ListAll[models.TeamMember]("Images"))
		api.GET("/missions", handlers.ListAll[models.Mission]())
		api.GET("/home-about", handlers.ListAll[models.HomeAbout]())
		api.GET("/mission-statements", handlers.ListAll[models.MissionStatement]())
		api.GET("/home-about-achievements", handlers.ListAll[models.HomeAboutAchievement]())

		// Authenticated user surface
		authed := api.Group("", middleware.AuthMiddleware())
		{
			authed.POST("/blogs/:slug/comments", handlers.CreateBlogComment)
			authed.POST("/request-blood", handlers.CreateBloodRequest)
			authed.GET("/my/requests", handlers.MyBloodRequests)
			authed.POST("/donate-interest", handlers.CreateInterest)
			authed.GET("/my/interests", handlers.MyInterests)
			authed.POST("/donations", handlers.CreateDonation)
			authed.GET("/my/donations", handlers.MyDonations)
		}

		// Administrative surface
		admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.RequireAdmin())
		{
			admin.GET("/users", handlers.AdminListUsers)
			admin.POST("/users", handlers.AdminCreateUser)
			admin.PATCH("/users/:id", handlers.AdminUpdateUser)
			admin.DELETE("/users/:id", handlers.AdminDeleteUser)

			admin.GET("/blogs", handlers.AdminListBlogs)
			admin.POST("/blogs", handlers.AdminCreateBlog)
			admin.PUT("/blogs/:id", handlers.AdminUpdateBlog)
			admin.DELETE("/blogs/:id", handlers.AdminDeleteBlog)

			admin.POST("/events", handlers.AdminCreateEvent)
			admin.PUT("/events/:id", handlers.AdminUpdateEvent)
			admin.DELETE("/events/:id", handlers.AdminDeleteEvent)

			admin.GET("/donations", handlers.AdminListDonations)
			admin.PUT("/donations/:id", handlers.AdminUpdateDonation)
			admin.DELETE("/donations/:id", handlers.AdminDeleteDonation)
			admin.GET("/interests", handlers.AdminListInterests)
			admin.POST("/interests/convert", handlers.ConvertInterests)

			admin.GET("/blood-requests", handlers.AdminListBloodRequests)
			admin.DELETE("/blood-requests/:id", handlers.AdminDeleteBloodRequest)

			registerCRUD[models.BloodInventory](admin, "/blood-inventory")
			registerCRUD[models.VaccineInventory](admin, "/vaccine-inventory")
			registerCRUD[models.Service](admin, "/services")
			registerCRUD[models.Activity](admin, "/activities")
			registerCRUD[models.TopDonor](admin, "/top-donors")
			registerCRUD[models.BloodDonor](admin, "/donors")
			registerCRUD[models.Achievement](admin, "/achievements")
			registerCRUD[models.Mission](admin, "/missions")
			registerCRUD[models.HomeAbout](admin, "/home-about")
			registerCRUD[models.MissionStatement](admin, "/mission-statements")
			registerCRUD[models.HomeAboutAchievement](admin, "/home-about-achievements")

			admin.GET("/about", handlers.ListAll[models.About]("Images"))
			admin.POST("/about", handlers.AdminCreateAbout)
			admin.PUT("/about/:id", handlers.AdminUpdateAbout)
			admin.DELETE("/about/:id", handlers.DeleteRecord[models.About]())

			admin.GET("/team-members", handlers.ListAll[models.TeamMember]("Images"))
			admin.POST("/team-members", handlers.AdminCreateTeamMember)
			admin.PUT("/team-members/:id", handlers.AdminUpdateTeamMember)
			admin.DELETE("/team-members/:id", handlers.DeleteRecord[models.TeamMember]())

			admin.GET("/documents", handlers.ListAll[models.PDFDocument]())
			admin.POST("/documents", handlers.AdminCreateDocument)
			admin.DELETE("/documents/:id", handlers.AdminDeleteDocument)
		}
	}

	return r
}

func registerCRUD[T any](group *gin.RouterGroup, path string) {
	group.GET(path, handlers.ListAll[T]())
	group.GET(path+"/:id", handlers.GetByID[T]())
	group.POST(path, handlers.CreateRecord[T]())
	group.PUT(path+"/:id", handlers.UpdateRecord[T]())
	group.DELETE(path+"/:id", handlers.DeleteRecord[T]())
}
