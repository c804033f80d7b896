package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/internal/store"
	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/jwtx"
	"github.com/sumansi/storefront/pkg/slogx"

	_ "github.com/sumansi/storefront/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	issuer       *jwtx.Issuer
	secureCookie bool
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	AuthService         *service.AuthService
	UserService         *service.UserService
	ProductService      *service.ProductService
	AnnouncementService *service.AnnouncementService
	CartService         *service.CartService
	WishlistService     *service.WishlistService
}

func NewRouter(
	issuer *jwtx.Issuer,
	secureCookie bool,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		issuer:       issuer,
		secureCookie: secureCookie,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerProducts()
	r.registerAnnouncements()
	r.registerCart()
	r.registerWishlist()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Storefront API
//	@version		0.1.0
//	@description	Clothing storefront backend: accounts with JWT session tokens, product catalog, cart, wishlist and announcements.
//	@description
//	@description				Access tokens are HS256-signed JWTs carried as "Bearer {token}". Refresh tokens live in an httpOnly cookie scoped to /api/refresh.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signupHandler := &SignupHandler{
		AuthService:  r.AuthService,
		SecureCookie: r.secureCookie,
		RefreshTTL:   r.issuer.RefreshTTL,
	}
	loginHandler := &LoginHandler{
		AuthService:  r.AuthService,
		SecureCookie: r.secureCookie,
		RefreshTTL:   r.issuer.RefreshTTL,
	}
	refreshHandler := &RefreshHandler{AuthService: r.AuthService}
	forgotHandler := &ForgotPasswordHandler{AuthService: r.AuthService}
	resetHandler := &ResetPasswordHandler{AuthService: r.AuthService}

	// Credential endpoints are brute-force targets; strict limit by IP.
	r.Mux.Handle("POST /api/signup",
		httpx.Chain(signupHandler, httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /api/login",
		httpx.Chain(loginHandler, httpx.RateLimitByIP(httpx.StrictLimit)))

	// Refresh fires on a timer from every live client session.
	r.Mux.Handle("POST /api/refresh",
		httpx.Chain(refreshHandler, httpx.RateLimitByIP(httpx.LenientLimit)))

	r.Mux.Handle("POST /api/forgot-password",
		httpx.Chain(forgotHandler, httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /api/reset-password/{token}",
		httpx.Chain(resetHandler, httpx.RateLimitByIP(httpx.StrictLimit)))
}

func (r *Router) registerUsers() {
	profileHandler := &ProfileHandler{UserService: r.UserService}
	r.Mux.Handle("PUT /api/user/profile",
		httpx.Chain(profileHandler,
			httpx.RequireAuth(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))

	usersHandler := &UsersHandler{UserService: r.UserService}
	r.Mux.Handle("GET /api/users",
		httpx.Chain(usersHandler,
			httpx.RequireAuth(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{ProductService: r.ProductService}

	// Catalog reads are public.
	r.Mux.Handle("GET /api/products",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /api/products/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), httpx.RateLimitByIP(httpx.PublicLimit)))

	// Catalog writes require a session.
	r.Mux.Handle("POST /api/products",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RequireAuth(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
	r.Mux.Handle("PUT /api/products/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RequireAuth(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
	r.Mux.Handle("DELETE /api/products/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RequireAuth(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
}

func (r *Router) registerAnnouncements() {
	h := &AnnouncementsHandler{AnnouncementService: r.AnnouncementService}

	r.Mux.Handle("GET /api/announcements",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(httpx.PublicLimit)))

	r.Mux.Handle("POST /api/announcements",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RequireAuth(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
	r.Mux.Handle("PUT /api/announcements/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RequireAuth(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
	r.Mux.Handle("DELETE /api/announcements/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RequireAuth(r.issuer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
}

func (r *Router) registerCart() {
	h := &CartHandler{CartService: r.CartService}
	auth := httpx.RequireAuth(r.issuer)

	r.Mux.Handle("GET /api/cart",
		httpx.Chain(http.HandlerFunc(h.HandleList), auth, httpx.RateLimitByUser(httpx.LenientLimit)))
	r.Mux.Handle("POST /api/cart",
		httpx.Chain(http.HandlerFunc(h.HandleAdd), auth, httpx.RateLimitByUser(httpx.LenientLimit)))
	r.Mux.Handle("DELETE /api/cart/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove), auth, httpx.RateLimitByUser(httpx.LenientLimit)))
	r.Mux.Handle("DELETE /api/cart",
		httpx.Chain(http.HandlerFunc(h.HandleClear), auth, httpx.RateLimitByUser(httpx.LenientLimit)))
}

func (r *Router) registerWishlist() {
	h := &WishlistHandler{WishlistService: r.WishlistService}
	auth := httpx.RequireAuth(r.issuer)

	r.Mux.Handle("GET /api/wishlist",
		httpx.Chain(http.HandlerFunc(h.HandleList), auth, httpx.RateLimitByUser(httpx.LenientLimit)))
	r.Mux.Handle("POST /api/wishlist",
		httpx.Chain(http.HandlerFunc(h.HandleToggle), auth, httpx.RateLimitByUser(httpx.LenientLimit)))
	r.Mux.Handle("DELETE /api/wishlist/{productId}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove), auth, httpx.RateLimitByUser(httpx.LenientLimit)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
