// Package redis connects to the Redis server that backs the document cache.
//
// Connect parses the URL, then pings with a constant backoff until the server
// answers or the attempts run out. Healthcheck wraps PING for readiness
// probes, and DocumentLoader binds a client to the configured key prefix.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	loader, err := redis.DocumentLoader(client, cfg)
//	if err != nil {
//	    return err
//	}
//	secret := document.NewLazy("secret.txt", loader)
package redis
