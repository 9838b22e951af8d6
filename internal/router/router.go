package router

import (
	"database/sql"
	"net/http"
	"time"

	objmem "cat-collector/internal/adapters/objectstore/memory"
	mem "cat-collector/internal/adapters/storage/memory"
	pg "cat-collector/internal/adapters/storage/postgres"
	_ "cat-collector/internal/docs"
	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/platform/password"
	"cat-collector/internal/ports/auth"
	"cat-collector/internal/ports/objectstore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultDevBucket = "catcollector"

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil

	// Solo en desarrollo: acepta X-Debug-User-ID cuando no hay verifier.
	DevAuth bool

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si es nil se usa un store en memoria.
	ObjectStore   objectstore.Store
	Bucket        string
	BaseURL       string
	UploadTimeout time.Duration
	MaxUploadSize int64

	// Zero => password.DefaultParams.
	PasswordParams password.Params

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var (
		catRepo     cats.Repository
		toyRepo     toys.Repository
		accountRepo accounts.Repository
	)
	if opts.DB != nil {
		catRepo = pg.NewCatsRepo(opts.DB)
		toyRepo = pg.NewToysRepo(opts.DB)
		accountRepo = pg.NewAccountsRepo(opts.DB)
	} else {
		store := mem.NewStore()
		catRepo = mem.NewCatRepo(store)
		toyRepo = mem.NewToyRepo(store)
		accountRepo = mem.NewAccountRepo(store)
	}

	photos := cats.PhotoStorage{
		Store:   opts.ObjectStore,
		Bucket:  opts.Bucket,
		BaseURL: opts.BaseURL,
		Timeout: opts.UploadTimeout,
	}
	if photos.Store == nil {
		photos.Store = objmem.NewStore()
		if photos.Bucket == "" {
			photos.Bucket = defaultDevBucket
		}
	}

	// Services por módulo
	toysSvc := toys.NewService(toyRepo)
	catsSvc := cats.NewService(catRepo, toysSvc, photos, log)
	accountsSvc := accounts.NewService(accountRepo, password.NewHasher(opts.PasswordParams))

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.AuthContext(opts.AuthVerifier, accountsSvc, opts.DevAuth))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	accounts.RegisterRoutes(r, accountsSvc)
	cats.RegisterRoutes(r, catsSvc, opts.MaxUploadSize)
	toys.RegisterRoutes(r, toysSvc)

	return r
}
