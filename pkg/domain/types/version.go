package types

// Version is overwritten at build time via -ldflags
var Version = "dev"

// AppName is used as log attribute and summary header
const AppName = "fontinst"
