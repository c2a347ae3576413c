package directory

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/google/uuid"
)

// HeaderToken is the primary header clients use to present a token
const HeaderToken = "X-Token"

// Server is the HTTP transport over the resolvers. It owns the fiber app,
// the identity middleware, and the error rendering; all authorization lives
// in the resolvers' guards.
type Server struct {
	app    *fiber.App
	users  *UserResolver
	orgs   *OrganisationResolver
	logger Logger
}

// NewServer wires the routes. The token validator is only used by the
// identity middleware; handlers read identity from the request context.
func NewServer(validator TokenValidator, users *UserResolver, orgs *OrganisationResolver) *Server {
	s := &Server{
		users:  users,
		orgs:   orgs,
		logger: defLogger{},
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "go-directory",
		ErrorHandler: s.renderError,
	})

	s.app.Use(RequestIdentity(validator, s.logger))
	s.registerRoutes()

	return s
}

func (s *Server) WithLogger(logger Logger) *Server {
	s.logger = logger
	return s
}

// App exposes the underlying fiber app, mostly for tests
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes() {
	s.app.Post("/signup", s.handleSignUp)
	s.app.Post("/signin", s.handleSignIn)

	s.app.Get("/me", s.handleMe)
	s.app.Get("/users", s.handleUsers)
	s.app.Get("/users/:id", s.handleUser)

	s.app.Get("/organisations", s.handleOrganisations)
	s.app.Get("/organisations/:id", s.handleOrganisation)
	s.app.Post("/organisations", s.handleCreateOrganisation)
	s.app.Put("/organisations/:id", s.handleEditOrganisation)
	s.app.Delete("/organisations/:id", s.handleDeleteOrganisation)
}

func (s *Server) handleSignUp(c *fiber.Ctx) error {
	input := SignUpInput{}
	if err := c.BodyParser(&input); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid sign up payload").
			WithCode(errors.CodeBadRequest)
	}

	payload, err := s.users.SignUp(c.UserContext(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(payload)
}

func (s *Server) handleSignIn(c *fiber.Ctx) error {
	input := SignInInput{}
	if err := c.BodyParser(&input); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid sign in payload").
			WithCode(errors.CodeBadRequest)
	}

	payload, err := s.users.SignIn(c.UserContext(), input)
	if err != nil {
		return err
	}

	return c.JSON(payload)
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	user, err := s.users.Me(c.UserContext(), NoArgs{})
	if err != nil {
		return err
	}

	if user == nil {
		return c.JSON(nil)
	}
	return c.JSON(user)
}

func (s *Server) handleUsers(c *fiber.Ctx) error {
	records, err := s.users.Users(c.UserContext(), NoArgs{})
	if err != nil {
		return err
	}
	return c.JSON(records)
}

func (s *Server) handleUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	user, err := s.users.User(c.UserContext(), UserArgs{ID: id})
	if err != nil {
		return err
	}

	if user == nil {
		return c.JSON(nil)
	}
	return c.JSON(user)
}

func (s *Server) handleOrganisations(c *fiber.Ctx) error {
	records, err := s.orgs.Organisations(c.UserContext(), NoArgs{})
	if err != nil {
		return err
	}
	return c.JSON(records)
}

func (s *Server) handleOrganisation(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	record, err := s.orgs.Organisation(c.UserContext(), OrganisationArgs{ID: id})
	if err != nil {
		return err
	}

	if record == nil {
		return c.JSON(nil)
	}
	return c.JSON(record)
}

func (s *Server) handleCreateOrganisation(c *fiber.Ctx) error {
	input := OrganisationInput{}
	if err := c.BodyParser(&input); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid organisation payload").
			WithCode(errors.CodeBadRequest)
	}

	record, err := s.orgs.Create(c.UserContext(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (s *Server) handleEditOrganisation(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	input := OrganisationInput{}
	if err := c.BodyParser(&input); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid organisation payload").
			WithCode(errors.CodeBadRequest)
	}

	record, err := s.orgs.Edit(c.UserContext(), OrganisationUpdateArgs{ID: id, Input: input})
	if err != nil {
		return err
	}

	return c.JSON(record)
}

func (s *Server) handleDeleteOrganisation(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	ok, err := s.orgs.Delete(c.UserContext(), OrganisationArgs{ID: id})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"deleted": ok})
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.New("invalid id", errors.CategoryBadInput).
			WithCode(errors.CodeBadRequest)
	}
	return id, nil
}

// RequestIdentity resolves the caller's token once per request and attaches
// the decoded claims and identity to the request context. No token is fine;
// a present but unverifiable token fails the request before any handler.
func RequestIdentity(validator TokenValidator, logger Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := ExtractRawToken(c)
		if raw == "" {
			return c.Next()
		}

		claims, err := validator.Validate(raw)
		if err != nil {
			logger.Info("Request token rejected", "error", err)
			expired := ErrSessionExpired.Clone()
			expired.Source = err
			return expired
		}

		ctx := WithClaimsContext(c.UserContext(), claims)
		ctx = WithIdentity(ctx, identityFromClaims(claims))
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// ExtractRawToken reads the token from the X-Token header, falling back to a
// standard Authorization bearer header.
func ExtractRawToken(c *fiber.Ctx) string {
	if raw := c.Get(HeaderToken); raw != "" {
		return raw
	}

	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}

// renderError maps rich errors to their HTTP status and a JSON body. Opaque
// errors never leak details to the client.
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
			WithCode(errors.CodeInternal)
	}

	status := richErr.Code
	if status <= 0 {
		status = statusFromCategory(richErr.Category)
	}

	s.logger.Info(
		"Request error",
		"error", richErr.Message,
		"category", richErr.Category,
		"details", print.MaybePrettyJSON(richErr.Metadata),
	)

	return c.Status(status).JSON(fiber.Map{
		"error": richErr.Message,
	})
}

func statusFromCategory(category errors.Category) int {
	switch category {
	case errors.CategoryAuth, errors.CategoryAuthz:
		return fiber.StatusUnauthorized
	case errors.CategoryValidation, errors.CategoryBadInput:
		return fiber.StatusBadRequest
	case errors.CategoryNotFound:
		return fiber.StatusNotFound
	case errors.CategoryConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
