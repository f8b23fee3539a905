package main

import (
	"os"

	"github.com/ImGajeed76/pathkit/internal/cli"
	sftpmanager "github.com/ImGajeed76/pathkit/pkg/pathkit/sftp"
)

func main() {
	err := cli.Execute()
	sftpmanager.GetGlobalManager().Close()
	if err != nil {
		os.Exit(1)
	}
}
