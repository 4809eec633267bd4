package handlers

import (
	"github.com/connorholly11/friend-meetup/internal/middleware"
	"github.com/connorholly11/friend-meetup/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Services bundles the ledgers the HTTP surface is built on.
type Services struct {
	Auth         *services.AuthService
	Users        *services.UserService
	Groups       *services.GroupService
	Voting       *services.VotingService
	Availability *services.AvailabilityService
	Hosting      *services.HostingService
	Audit        *services.AuditService
}

// NewServices wires every ledger onto db. audit may be nil.
func NewServices(db *gorm.DB, audit *services.AuditService) *Services {
	return &Services{
		Auth:         services.NewAuthService(db),
		Users:        services.NewUserService(db),
		Groups:       services.NewGroupService(db, audit),
		Voting:       services.NewVotingService(db, audit),
		Availability: services.NewAvailabilityService(db),
		Hosting:      services.NewHostingService(db),
		Audit:        audit,
	}
}

func RegisterRoutes(app *fiber.App, db *gorm.DB, svc *Services) {
	authHandler := NewAuthHandler(svc.Auth, svc.Users)
	usersHandler := NewUsersHandler(svc.Users)
	groupsHandler := NewGroupsHandler(svc.Groups, svc.Audit)
	invitationsHandler := NewInvitationsHandler(svc.Groups)
	eventsHandler := NewEventsHandler(svc.Voting)
	availabilityHandler := NewAvailabilityHandler(svc.Availability)
	hostingHandler := NewHostingHandler(svc.Hosting)
	authMiddleware := middleware.NewAuthMiddleware(db)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Get("/version", GetVersion)

	authRoutes := api.Group("/auth")
	authRoutes.Post("/signup", authHandler.Signup)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Get("/me", authMiddleware.RequireAuth, authHandler.Me)
	authRoutes.Delete("/me", authMiddleware.RequireAuth, authHandler.DeleteMe)
	authRoutes.Put("/password", authMiddleware.RequireAuth, authHandler.ChangePassword)

	api.Get("/users/search", authMiddleware.RequireAuth, usersHandler.Search)

	groupRoutes := api.Group("/groups", authMiddleware.RequireAuth)
	groupRoutes.Post("/", groupsHandler.Create)
	groupRoutes.Get("/", groupsHandler.List)
	groupRoutes.Get("/:id", groupsHandler.Get)
	groupRoutes.Get("/:id/activity", groupsHandler.Activity)
	groupRoutes.Post("/:id/invitations", invitationsHandler.Invite)
	groupRoutes.Get("/:id/invitations", invitationsHandler.ListForGroup)
	groupRoutes.Post("/:id/suggestions", eventsHandler.Suggest)
	groupRoutes.Get("/:id/suggestions", eventsHandler.ListSuggestions)
	groupRoutes.Get("/:id/suggestions/top", eventsHandler.Top)
	groupRoutes.Post("/:id/slots", availabilityHandler.AddSlot)
	groupRoutes.Get("/:id/slots", availabilityHandler.ListSlots)
	groupRoutes.Put("/:id/hosting", hostingHandler.Set)
	groupRoutes.Get("/:id/hosting", hostingHandler.List)
	groupRoutes.Delete("/:id/hosting/:day", hostingHandler.Remove)
	groupRoutes.Get("/:id/hosts", hostingHandler.Hosts)

	invitationRoutes := api.Group("/invitations", authMiddleware.RequireAuth)
	invitationRoutes.Get("/", invitationsHandler.ListMine)
	invitationRoutes.Put("/:id", invitationsHandler.Respond)

	suggestionRoutes := api.Group("/suggestions", authMiddleware.RequireAuth)
	suggestionRoutes.Post("/:id/votes", eventsHandler.Vote)
	suggestionRoutes.Get("/:id/votes", eventsHandler.Count)

	slotRoutes := api.Group("/slots", authMiddleware.RequireAuth)
	slotRoutes.Post("/:id/availability", availabilityHandler.Mark)
	slotRoutes.Get("/:id/availability", availabilityHandler.Who)
}
