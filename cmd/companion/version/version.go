package version

// overridden at build time via -ldflags "-X .../cmd/companion/version.version=..."
var version = "dev"
