package version

// Version is the protopatch release version, kept in lockstep with the
// epoch-protos package version it scaffolds.
var Version = "1.0.0"
