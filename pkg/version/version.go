package version

// Version is the current ta version. Overridden at build time with
// -ldflags "-X github.com/texel-architect/texel_architect/pkg/version.Version=vX.Y.Z".
var Version = "v0.1.0"
