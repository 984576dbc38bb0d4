// Package redis provides Redis client initialization for the session
// store: URL-based configuration, retry-based connection establishment
// and a health check probe.
//
//	cfg := config.MustLoad[redis.Config]()
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	sessions := session.NewRedisStore(client)
//
// Both redis:// and rediss:// URL schemes are supported.
package redis
