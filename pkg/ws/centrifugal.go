package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sitelabour/internal/config"
	"sitelabour/internal/middleware"
	"sitelabour/pkg/constant"
	"sitelabour/pkg/util/general"

	"github.com/centrifugal/centrifuge"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var NodeCentrifugal *centrifuge.Node

func handleLog(e centrifuge.LogEntry) {
	logrus.Infof("%s: %v", e.Message, e.Fields)
}

func InitCentrifugal(ctx context.Context, e *echo.Echo) {
	var err error

	NodeCentrifugal, err = centrifuge.New(centrifuge.Config{
		LogLevel:   centrifuge.LogLevelError,
		LogHandler: handleLog,
	})
	if err != nil {
		panic(err)
	}

	NodeCentrifugal.OnConnecting(func(ctx context.Context, e centrifuge.ConnectEvent) (centrifuge.ConnectReply, error) {
		logrus.Infof("users try connecting: %s", e.ClientID)
		dataContext, err := middleware.JustValidateToken(e.Token)
		if err != nil {
			if err.Code == http.StatusUnauthorized {
				return centrifuge.ConnectReply{}, centrifuge.ErrorTokenExpired // 109 - token expired
			} else {
				logrus.Infof("error on connecting: %s", err.Error())
				return centrifuge.ConnectReply{}, centrifuge.DisconnectInvalidToken // 3500 - invalid token
			}
		}
		return centrifuge.ConnectReply{
			Credentials: &centrifuge.Credentials{
				UserID: strconv.Itoa(dataContext.Auth.ID),
			},
		}, nil
	})

	NodeCentrifugal.OnConnect(func(client *centrifuge.Client) {
		transport := client.Transport()
		logrus.Infof("user %s connected via %s with protocol: %s", client.UserID(), transport.Name(), transport.Protocol())

		client.OnRefresh(func(e centrifuge.RefreshEvent, cb centrifuge.RefreshCallback) {
			logrus.Infof("user %s connection is going to expire, refreshing", client.UserID())
			cb(centrifuge.RefreshReply{ExpireAt: time.Now().Unix() + 60*10}, nil)
		})

		client.OnSubRefresh(func(e centrifuge.SubRefreshEvent, cb centrifuge.SubRefreshCallback) {
			logrus.Infof("user %s connection is going to expire, refreshing sub", client.UserID())
			cb(centrifuge.SubRefreshReply{ExpireAt: time.Now().Unix() + 60*10}, nil)
		})

		client.OnSubscribe(func(e centrifuge.SubscribeEvent, cb centrifuge.SubscribeCallback) {
			logrus.Infof("user %s subscribes on %s", client.UserID(), e.Channel)
			// the shared board channel and the user's own channel only
			if e.Channel != constant.BOARD_CHANNEL && e.Channel != client.UserID() {
				cb(centrifuge.SubscribeReply{}, centrifuge.ErrorPermissionDenied)
				logrus.Infof("denied user %s subscribes on %s", client.UserID(), e.Channel)
				return
			}
			cb(centrifuge.SubscribeReply{}, nil)
		})

		client.OnDisconnect(func(e centrifuge.DisconnectEvent) {
			logrus.Infof("user %s disconnected, disconnect: %s", client.UserID(), e.Disconnect)
		})
	})

	address := fmt.Sprintf("%s:%s", config.Get().Redis.RedisHost, config.Get().Redis.RedisPort)

	redisShardConfigs := []centrifuge.RedisShardConfig{
		{
			Address:  address,
			Password: config.Get().Redis.RedisPassword,
		},
	}

	var redisShards []*centrifuge.RedisShard
	for _, redisConf := range redisShardConfigs {
		redisShard, err := centrifuge.NewRedisShard(NodeCentrifugal, redisConf)
		if err != nil {
			logrus.Fatal(err)
		}
		redisShards = append(redisShards, redisShard)
	}

	broker, err := centrifuge.NewRedisBroker(NodeCentrifugal, centrifuge.RedisBrokerConfig{
		Shards: redisShards,
	})
	if err != nil {
		logrus.Fatal(err)
	}
	NodeCentrifugal.SetBroker(broker)

	presenceManager, err := centrifuge.NewRedisPresenceManager(NodeCentrifugal, centrifuge.RedisPresenceManagerConfig{
		Shards: redisShards,
	})
	if err != nil {
		logrus.Fatal(err)
	}
	NodeCentrifugal.SetPresenceManager(presenceManager)

	if err := NodeCentrifugal.Run(); err != nil {
		logrus.Fatalf("Error on start centrifuge: %v", err)
	}

	websocketHandler := centrifuge.NewWebsocketHandler(NodeCentrifugal, centrifuge.WebsocketConfig{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	})

	e.GET("/websocket", convert(auth(websocketHandler)))

	go func() {
		for range ctx.Done() {
			ctx2, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			NodeCentrifugal.Shutdown(ctx2)
			logrus.Println("centrifugal is stopped")
			return
		}
	}()
}

func convert(h http.Handler) echo.HandlerFunc {
	return func(c echo.Context) error {
		h.ServeHTTP(c.Response().Writer, c.Request())
		return nil
	}
}

func auth(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		newCtx := centrifuge.SetCredentials(ctx, &centrifuge.Credentials{
			UserID: general.RandSeq(10),
		})

		r = r.WithContext(newCtx)
		h.ServeHTTP(w, r)
	})
}

// PublishBoardUpdate nudges dashboard clients to refetch. Safe to call before
// the node is up; the save itself must never fail on a publish problem.
func PublishBoardUpdate(projectId int, date string) {
	if NodeCentrifugal == nil {
		return
	}

	byteData, err := json.Marshal(map[string]interface{}{
		"event":      "board_update",
		"project_id": projectId,
		"date":       date,
	})
	if err != nil {
		logrus.Errorf("marshal board update: %v", err)
		return
	}

	if _, err = NodeCentrifugal.Publish(constant.BOARD_CHANNEL, byteData); err != nil {
		logrus.Errorf("error publishing: %v", err)
	}
}
