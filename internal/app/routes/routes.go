package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wilsonXeem/clong-backend/internal/app/controllers"
	"github.com/wilsonXeem/clong-backend/internal/middleware"
)

// Controllers bundles the controller set the router mounts
type Controllers struct {
	User      *controllers.UserController
	Program   *controllers.ProgramController
	Donation  *controllers.DonationController
	Event     *controllers.EventController
	Article   *controllers.ArticleController
	Story     *controllers.StoryController
	Resource  *controllers.ResourceController
	Volunteer *controllers.VolunteerController
	Outreach  *controllers.OutreachController
	Upload    *controllers.UploadController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	c *Controllers,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "CLONG API is running"})
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// --- Users ---
	users := api.Group("/users")
	{
		users.POST("/register", rateLimiter.Limit(), c.User.Register)
		users.POST("/login", rateLimiter.Limit(), c.User.Login)

		usersAuthed := users.Group("")
		usersAuthed.Use(authMiddleware.JWTAuth())
		{
			usersAuthed.GET("/profile", c.User.GetProfile)
			usersAuthed.PUT("/profile", c.User.UpdateProfile)

			usersAdmin := usersAuthed.Group("")
			usersAdmin.Use(authMiddleware.AdminRequired())
			{
				usersAdmin.GET("", c.User.GetAllUsers)
				usersAdmin.PUT("/:id/role", c.User.UpdateRole)
				usersAdmin.PATCH("/:id/status", c.User.ToggleActive)
				usersAdmin.DELETE("/:id", c.User.DeleteUser)
			}
		}
	}

	// --- Programs ---
	programs := api.Group("/programs")
	{
		programs.GET("", authMiddleware.OptionalJWTAuth(), c.Program.GetPrograms)
		programs.GET("/:id", c.Program.GetProgramByID)

		programsAdmin := programs.Group("")
		programsAdmin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
		{
			programsAdmin.POST("", c.Program.CreateProgram)
			programsAdmin.PUT("/:id", c.Program.UpdateProgram)
			programsAdmin.DELETE("/:id", c.Program.DeleteProgram)
		}
	}

	// --- Donations ---
	donations := api.Group("/donations")
	{
		donations.POST("", authMiddleware.OptionalJWTAuth(), c.Donation.CreateDonation)
		donations.GET("", c.Donation.GetDonations)
		donations.GET("/my", authMiddleware.JWTAuth(), c.Donation.GetMyDonations)
		donations.GET("/:id", authMiddleware.OptionalJWTAuth(), c.Donation.GetDonationByID)
		donations.PATCH("/:id/status", authMiddleware.JWTAuth(), authMiddleware.AdminRequired(), c.Donation.UpdatePaymentStatus)
	}

	// --- Events ---
	events := api.Group("/events")
	{
		events.GET("", authMiddleware.OptionalJWTAuth(), c.Event.GetEvents)
		events.GET("/:id", c.Event.GetEventByID)
		events.POST("/:id/register", authMiddleware.OptionalJWTAuth(), c.Event.RegisterForEvent)

		eventsAdmin := events.Group("")
		eventsAdmin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
		{
			eventsAdmin.POST("", c.Event.CreateEvent)
			eventsAdmin.PUT("/:id", c.Event.UpdateEvent)
			eventsAdmin.DELETE("/:id", c.Event.DeleteEvent)
			eventsAdmin.GET("/:id/registrations", c.Event.GetEventRegistrations)
		}
	}

	// --- Articles and blogs (one controller, two trees) ---
	for _, prefix := range []string{"/articles", "/blogs"} {
		group := api.Group(prefix)

		group.GET("", authMiddleware.OptionalJWTAuth(), c.Article.GetArticles)
		group.GET("/:slug", c.Article.GetArticleBySlug)

		groupAdmin := group.Group("")
		groupAdmin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
		{
			groupAdmin.POST("", c.Article.CreateArticle)
			groupAdmin.PUT("/:slug", c.Article.UpdateArticle)
			groupAdmin.DELETE("/:slug", c.Article.DeleteArticle)
			groupAdmin.PATCH("/:slug/publish", c.Article.SetPublished)
		}
	}

	// --- Stories ---
	stories := api.Group("/stories")
	{
		stories.GET("", c.Story.GetStories)
		stories.GET("/:id", authMiddleware.OptionalJWTAuth(), c.Story.GetStoryByID)

		storiesAuthed := stories.Group("")
		storiesAuthed.Use(authMiddleware.JWTAuth())
		{
			storiesAuthed.GET("/user", c.Story.GetMyStories)
			storiesAuthed.POST("", c.Story.CreateStory)
			storiesAuthed.PUT("/:id", c.Story.UpdateStory)
			storiesAuthed.DELETE("/:id", c.Story.DeleteStory)
		}
	}

	// --- Resources ---
	resources := api.Group("/resources")
	{
		resources.GET("", c.Resource.GetResources)
		resources.GET("/:id", authMiddleware.OptionalJWTAuth(), c.Resource.GetResourceByID)

		resourcesAuthed := resources.Group("")
		resourcesAuthed.Use(authMiddleware.JWTAuth())
		{
			resourcesAuthed.GET("/user", c.Resource.GetMyResources)
			resourcesAuthed.POST("", c.Resource.CreateResource)
			resourcesAuthed.PUT("/:id", c.Resource.UpdateResource)
			resourcesAuthed.DELETE("/:id", c.Resource.DeleteResource)
		}
	}

	// --- Volunteers ---
	volunteers := api.Group("/volunteers")
	{
		volunteers.POST("/apply", rateLimiter.Limit(), authMiddleware.OptionalJWTAuth(), c.Volunteer.Apply)
		volunteers.GET("/my-application", authMiddleware.JWTAuth(), c.Volunteer.GetMyApplication)

		volunteersAdmin := volunteers.Group("")
		volunteersAdmin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
		{
			volunteersAdmin.GET("", c.Volunteer.GetVolunteers)
			volunteersAdmin.GET("/:id", c.Volunteer.GetVolunteerByID)
			volunteersAdmin.PUT("/:id/status", c.Volunteer.UpdateStatus)
		}
	}

	// --- Contacts ---
	contacts := api.Group("/contacts")
	{
		contacts.POST("", rateLimiter.Limit(), c.Outreach.SubmitContact)

		contactsAdmin := contacts.Group("")
		contactsAdmin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
		{
			contactsAdmin.GET("", c.Outreach.GetContacts)
			contactsAdmin.PATCH("/:id/read", c.Outreach.MarkContactRead)
		}
	}

	// --- Newsletter ---
	newsletter := api.Group("/newsletter")
	{
		newsletter.POST("/subscribe", rateLimiter.Limit(), c.Outreach.Subscribe)
		newsletter.POST("/unsubscribe", c.Outreach.Unsubscribe)
		newsletter.GET("/subscribers", authMiddleware.JWTAuth(), authMiddleware.AdminRequired(), c.Outreach.GetSubscribers)
	}

	// --- Upload relay ---
	api.POST("/upload", authMiddleware.JWTAuth(), c.Upload.Upload)
}
