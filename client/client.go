package client

import (
	"github.com/cloudflare/cfssl/log"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"

	"github.com/crowdfundV2/global"
)

// 监听用户请求
func ListenRequest() {
	r := gin.Default()
	r.Use(Cors()) // 使用跨域组件
	//r.Use(TlsHandler()) // 重定向为https
	r.POST("/createCampaign", createCampaign)     // 创建众筹活动
	r.POST("/pledge", pledge)                     // 认捐
	r.POST("/unpledge", unpledge)                 // 撤回认捐
	r.POST("/claim", claim)                       // 发起人提取全部认捐并终结活动
	r.POST("/cancel", cancel)                     // 注销活动
	r.POST("/refund", refund)                     // 管理员全量退款
	r.POST("/toggleCanOperate", toggleCanOperate) // 管理员急停开关
	r.GET("/listCampaigns", listCampaigns)        // 活动注册表全量快照
	r.GET("/getCampaign", getCampaign)            // 查询单个活动
	r.GET("/registerAccount", registerAccount)    // 注册账户
	r.GET("/getAccount", getAccount)              // 查询账户
	r.GET("/getEvents", getEvents)                // 查询活动事件
	r.GET("/getLog", getLog)                      // 与前端建立websocket

	log.Info(" ---------------------------------------------------------------------------------")
	log.Info("|  众筹账本节点已启动，监听地址: " + global.HttpAddr + "  |")
	log.Info(" ---------------------------------------------------------------------------------")
	_ = r.Run(global.HttpAddr)
}

func TlsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		secureMiddleware := secure.New(secure.Options{
			SSLRedirect: true,
			SSLHost:     "localhost:8080",
		})
		err := secureMiddleware.Process(c.Writer, c.Request)

		// If there was an error, do not continue.
		if err != nil {
			c.Abort()
			return
		}
		c.Next()
	}
}
