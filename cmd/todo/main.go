// Command todo is a command-line client for JSON TODO APIs, and can serve a
// local one backed by SQLite.
package main

func main() {
	Execute()
}
