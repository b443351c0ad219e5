// Package document implements the document read chain.
//
// Reader is the single capability: Read(ctx) string. Failures are in-band:
// AccessDenied when an access-control wrapper rejects the caller and
// Unavailable when the terminal holder could not load its document.
//
// Lazy is the terminal node. It defers calling its Loader until the first
// Read, then serves the cached document; load failures are logged and
// retried on the next Read. Loaders exist for fixed content (Static), local
// disk (FileLoader), S3 (S3Loader) and Redis (RedisLoader).
//
// NewAccessControl short-circuits with AccessDenied without touching
// anything downstream, so a denied call never triggers the lazy load.
// NewLogging logs "Document accessed at <timestamp>" for every successful
// read.
//
// # Usage
//
//	secret := document.NewLazy("secret.txt", document.Static("Top Secret Data"))
//	r := chain.Chain[document.Reader](secret,
//	    document.AccessControl(access.RequireRole(role, access.DefaultRequiredRole)),
//	    document.Logging(document.WithLogger(log)),
//	)
//	fmt.Println(r.Read(ctx))
package document
