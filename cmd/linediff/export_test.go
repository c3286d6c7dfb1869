package main

// ParseArgs exposes parseArgs for testing.
var ParseArgs = parseArgs
