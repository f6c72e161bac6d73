package version

// AppVersion is the current release version.
const AppVersion = "0.1.0"
