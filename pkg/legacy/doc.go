// Package legacy contains stand-ins for third-party SDKs whose contracts
// do not match wrapkit capabilities: a status-code email SDK, a record-based
// SMS gateway, a cents-based bank API and a dict-style wallet API.
//
// The SDKs are deliberately left with their own method names, parameter
// shapes and success signalling; the adapters in pkg/notifier and
// pkg/payment translate them. Each SDK writes one "sending" record through
// its logger, which defaults to slog.Default().
package legacy
