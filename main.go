package main

import (
	"context"
	"log"

	"DocSlot/cache"
	"DocSlot/config"
	"DocSlot/controllers"
	"DocSlot/jobs"
	"DocSlot/mailer"
	"DocSlot/media"
	"DocSlot/metrics"
	"DocSlot/middleware"
	"DocSlot/migrations"
	"DocSlot/password"
	"DocSlot/routes"
	"DocSlot/services"
	"DocSlot/store"
	"DocSlot/token"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var (
	startServer = server.Start
	isTest      = false
)

const DOCTOR_BCRYPT_COST = 10

type app struct {
	store   *store.Store
	metrics *metrics.Metrics
	ctl     *controllers.Controller
	// pruner is set only when the login window lives in memory.
	pruner jobs.Pruner
}

func main() {
	run()
}

func run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	a := build(context.Background(), cfg)
	mongoEnabled := cfg.StoreDriver != config.StoreMemory

	defaultopts := server.GetDefaultOptions()

	options := server.Options{
		CacheEnabled:     false,
		MongoEnabled:     mongoEnabled,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		JobsEnabled: !isTest,
		JobsHandler: func() {
			if isTest || a.pruner == nil {
				return
			}
			scheduler := jobs.NewScheduler(a.pruner, a.metrics)
			if err := scheduler.Start(cfg.PruneSchedule); err != nil {
				log.Println("Jobs not started: ", err)
			}
		},

		WebServerPreHandler: func(r *gin.Engine) {
			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.REQUEST_ID_HEADER},
				AllowCredentials: true,
			}))
			routes.Routes(r, a.ctl, a.metrics)
		},

		MigrationEnabled: mongoEnabled && !isTest,
		MigrationHandler: func() {
			if isTest || !mongoEnabled {
				return
			}
			if err := migrations.Run(context.Background(), db.DB); err != nil {
				log.Println("Migrations stopped: ", err)
			}
		},
	}
	startServer(options)
}

/*
* Pick the store by driver
* Redis backs the cache and the login window when configured
* Otherwise memory or no cache, and an in-process login window
* Then build the services and the controller around them
 */
func build(ctx context.Context, cfg config.Config) *app {
	a := &app{metrics: metrics.New()}

	if cfg.StoreDriver == config.StoreMemory {
		a.store = store.NewMemory()
	} else {
		a.store = store.NewMongo(db.OpenCollections)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		client, err := cache.Dial(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Println("Redis unavailable, falling back to in-process cache: ", err)
		} else {
			rdb = client
		}
	}

	var doctorCache cache.Cache
	var limiter middleware.Limiter
	switch {
	case rdb != nil:
		doctorCache = cache.NewRedis(rdb)
		limiter = middleware.NewRedisLimiter(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow)
	default:
		if cfg.StoreDriver == config.StoreMemory {
			doctorCache = cache.NewMemory()
		} else {
			doctorCache = cache.Noop{}
		}
		memLimiter := middleware.NewMemoryLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
		limiter = memLimiter
		a.pruner = memLimiter
	}

	userHasher := password.NewArgon2(password.DefaultArgon2Params)
	doctorHasher := password.NewBcrypt(DOCTOR_BCRYPT_COST)
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpires, a.store.Users)

	mail := mailer.NewSMTP(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})

	a.ctl = &controllers.Controller{
		Auth:         services.NewAuthService(a.store.Users, userHasher, tokens, a.metrics),
		OTP:          services.NewOTPService(a.store.Users, userHasher, mail, cfg.OTPTTL, a.metrics),
		Doctors:      services.NewDoctorService(a.store.Doctors, doctorHasher, doctorCache),
		Bookings:     services.NewBookingService(a.store.Doctors, a.store.Bookings, doctorCache, a.metrics),
		Profiles:     services.NewProfileService(a.store.Users, imageHost(cfg)),
		Verifier:     tokens,
		LoginLimiter: limiter,
	}
	return a
}

func imageHost(cfg config.Config) media.ImageHost {
	if cfg.CloudinaryCloudName == "" {
		log.Println("Cloudinary is not configured, photo uploads are disabled")
		return media.Unconfigured{}
	}
	host, err := media.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return media.Unconfigured{}
	}
	return host
}
