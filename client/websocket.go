package client

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cloudflare/cfssl/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/crowdfundV2/global"
)

var upGrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// 使用WebSocket向前端推送已提交的领域事件
func getLog(c *gin.Context) {
	// 升级请求为WebSocket协议
	ws, err := upGrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Info("Upgrade failed")
		return
	}

	// 清空历史事件，只推送连接建立后的新事件
	for len(global.EventLog) != 0 {
		select {
		case <-global.EventLog:
		default:
		}
	}

	for {
		result := <-global.EventLog
		data, _ := json.Marshal(result)
		err = ws.WriteMessage(websocket.TextMessage, data)
		if err != nil {
			log.Info(err)
			break
		}
		time.Sleep(200 * time.Millisecond)
	}
}
