package main

import (
	"context"

	"autopredict-web/cmd/autopredict/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
