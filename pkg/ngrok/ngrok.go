package ngrok

import (
	"context"
	"net"

	"github.com/sirupsen/logrus"
	"golang.ngrok.com/ngrok"
	ngrokconfig "golang.ngrok.com/ngrok/config"
)

// Run opens a public tunnel for local development; the auth token comes from
// the NGROK_AUTHTOKEN environment variable.
func Run() net.Listener {
	listener, err := ngrok.Listen(
		context.Background(),
		ngrokconfig.HTTPEndpoint(),
		ngrok.WithAuthtokenFromEnv(),
	)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("ngrok tunnel created: %s", listener.URL())
	return listener
}
