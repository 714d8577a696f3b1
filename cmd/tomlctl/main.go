// Command tomlctl inspects TOML documents from the command line.
package main

func main() {
	execute()
}
