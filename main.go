package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"pulse/cache"
	"pulse/config"
	"pulse/engagement"
	"pulse/feeds"
	"pulse/graph"
	"pulse/notifications"
	"pulse/posts"
	"pulse/server"
	"pulse/storage/db"
	"pulse/storage/mem"
)

// dataStore is the full persistence surface the services consume, satisfied
// by both the Postgres and the in-memory implementations.
type dataStore interface {
	graph.Store
	posts.Store
	engagement.Store
	notifications.Store
	feeds.Store
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	ctx := context.Background()

	var store dataStore
	if cfg.DB.Host != "" {
		pool, err := pgxpool.New(ctx, cfg.DB.ConnString())
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		pg := db.New(pool)
		if err := pg.Init(ctx); err != nil {
			log.Fatalf("Error initializing schema: %v", err)
		}
		store = pg
	} else {
		log.Warn("No database host configured, running with the in-memory store")
		store = mem.New()
	}

	var handlesCache *cache.HandlesCache
	var unreadCache *cache.UnreadCache
	if cfg.Redis.Addr != "" {
		redisOptions := &redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		}
		handlesCache = cache.NewHandlesCache(redisOptions)
		unreadCache = cache.NewUnreadCache(redisOptions)
	}

	notificationsSvc := notifications.NewService(store, unreadCache)
	graphSvc := graph.NewService(store, notificationsSvc)
	postsSvc := posts.NewService(store, notificationsSvc)
	engagementSvc := engagement.NewService(store, notificationsSvc)
	feedsSvc := feeds.NewService(store)

	s := server.NewServer(
		graphSvc,
		postsSvc,
		engagementSvc,
		notificationsSvc,
		feedsSvc,
		handlesCache,
	)

	log.Infof("Listening on %s", cfg.Server.Addr)
	s.Run(cfg.Server.Addr)
}
