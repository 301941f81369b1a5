package commands

// Version is the application version. Set at build time.
var Version = "0.1.0"

// Banner returns the line printed when the shell starts.
func Banner() string {
	return "todo " + Version
}
