// Package main GitScope local repository inspection API
//
//	@title			GitScope API
//	@version		1.0.0
//	@description	GitScope registers local Git working copies and serves their status, branches, history and blame over HTTP
//
//	@contact.name	API Support
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host			localhost:3000
//	@BasePath		/api/v1
package main

import "github.com/gitscope/gitscope/internal"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	internal.Run()
}
