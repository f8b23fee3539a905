package path

import (
	"net"
	"testing"

	pathsftp "github.com/ImGajeed76/pathkit/pkg/pathkit/path/operations/sftp"
	"github.com/pkg/sftp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRemote returns a directory handle on an in-memory SFTP server.
func memoryRemote(t *testing.T, files ...string) *Directory {
	t.Helper()

	serverConn, clientConn := net.Pipe()
	server := sftp.NewRequestServer(serverConn, sftp.InMemHandler())
	go server.Serve()

	client, err := sftp.NewClientPipe(clientConn, clientConn)
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})

	provider, err := pathsftp.New(client)
	require.NoError(t, err)

	root := NewDirectoryOn(provider, "/srv")
	require.NoError(t, root.Create())
	for _, name := range files {
		file := root.GetFile(name)
		require.NoError(t, file.Create())
		require.NoError(t, file.WriteText("remote "+name, ""))
	}
	return root
}

func TestRemote_Search(t *testing.T) {
	root := memoryRemote(t, "a/x.txt", "a/b/y.txt", "a/b/z.md")

	found, err := root.Search("a/**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b/y.txt", "a/x.txt"}, relativeNames(t, root, found))
}

func TestRemote_CopyTree(t *testing.T) {
	root := memoryRemote(t, "site/index.html", "site/css/main.css", "site/img/logo.svg")
	site := root.GetDirectory("site")
	require.NoError(t, root.GetDirectory("releases").Create())

	_, err := site.Copy("/srv/releases")
	require.NoError(t, err)

	release := root.GetDirectory("releases", "site")
	assert.True(t, release.Exists())
	assert.Equal(t, treeOf(t, site), treeOf(t, release))

	css, err := release.GetFile("css", "main.css").ReadText("")
	require.NoError(t, err)
	assert.Equal(t, "remote site/css/main.css", css)
}

func TestRemote_FileMove(t *testing.T) {
	root := memoryRemote(t, "inbox/mail.eml")
	require.NoError(t, root.GetDirectory("done").Create())

	mail := root.GetFile("inbox", "mail.eml")
	require.NoError(t, mail.Move("/srv/done"))

	assert.Equal(t, "/srv/done/mail.eml", mail.FullPath())
	assert.True(t, mail.Exists())
	assert.False(t, root.GetFile("inbox", "mail.eml").Exists())
}
