package main

import "github.com/bookradar/bookradar-api/cmd"

//	@title			BookRadar API
//	@version		1.0
//	@description	Book search and discovery API backed by the OpenLibrary catalog, with search history, view tracking, and recommendations.

//	@contact.name	BookRadar API Support

//	@license.name	MIT

//	@host		localhost:8080
//	@BasePath	/

func main() {
	cmd.Execute()
}
