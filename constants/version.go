package constants

// Version is overridden at build time with -ldflags "-X ...constants.Version=vX.Y.Z"
var Version = "source"

const (
	ReleaseOwner = "welaika"
	ReleaseRepo  = "wordless-cli"
)
