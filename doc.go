// Package wrapkit is a set of composable capability chains.
//
// Every chain has one single-method capability interface, a terminal node
// that does the real work, and wrappers that hold exactly one inner node of
// the same interface. Wrappers add behavior around the delegation (logging,
// retry, timing, access control) without changing the result they pass back,
// so the composition root decides the nesting order and each order is a
// different but valid chain.
//
// Packages:
//
//   - pkg/chain: generic Middleware[T], Chain and a name-based Registry for
//     building chains from configuration
//   - pkg/notifier: (recipient, message) -> bool, with adapters over the
//     legacy email and SMS SDKs and over Postmark
//   - pkg/document: () -> string, with a lazily loading terminal backed by
//     static content, local files, S3 or Redis
//   - pkg/payment and pkg/processor: smaller adapter and decorator chains
//   - pkg/access and pkg/rbac: policies consulted by access-control wrappers
//   - pkg/legacy: the fixed third-party SDKs the adapters translate
//   - pkg/logger, pkg/config, pkg/backoff, pkg/redis: shared infrastructure
//
// Failures are reported in-band: false for boolean capabilities and the
// "ACCESS DENIED" and "DOCUMENT UNAVAILABLE" strings for documents.
//
// # Usage
//
//	log := logger.New(logger.WithEnvironment("development", "notifications"))
//
//	var cfg chain.Config
//	if err := config.LoadFile("chain.yaml", &cfg); err != nil {
//		return err
//	}
//
//	email := notifier.NewEmailAdapter(legacy.NewEmailSDK(log))
//	n, err := notifier.Build(email, cfg, log)
//	if err != nil {
//		return err
//	}
//	n.Send(ctx, "user@example.com", "Welcome!")
package wrapkit
