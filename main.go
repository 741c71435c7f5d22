package main

import (
	"flag"

	"github.com/cloudflare/cfssl/log"

	"github.com/crowdfundV2/account"
	"github.com/crowdfundV2/campaign"
	"github.com/crowdfundV2/client"
	"github.com/crowdfundV2/common"
	"github.com/crowdfundV2/config"
	"github.com/crowdfundV2/event"
	"github.com/crowdfundV2/global"
	"github.com/crowdfundV2/levelDB"
	"github.com/crowdfundV2/redis"
	"github.com/crowdfundV2/util"
)

func main() {
	Start()
}

func Start() {
	//获取到执行参数中的项目根目录
	rootDir := flag.String("root", ".", "项目根目录")
	flag.Parse()
	global.RootDir = *rootDir

	if !util.FileExists(global.RootDir + "/config/config.yaml") {
		log.Error("配置文件不存在: " + global.RootDir + "/config/config.yaml")
		return
	}

	//读取配置
	global.HttpAddr = config.GetString("http.addr")
	global.RedisAddr = config.GetString("redis.addr")
	global.AdminAddr = config.GetString("admin.address")
	if global.AdminAddr == "" {
		log.Error("配置缺少管理员地址 admin.address")
		return
	}

	//初始化存储
	levelDB.InitDB(global.RootDir + "/" + config.GetString("db.path"))
	if global.RedisAddr != "" {
		redis.InitRedis(global.RedisAddr)
	}

	//从磁盘恢复状态
	account.GetFromDisk()
	campaign.InitFromDisk()
	event.InitEventData()

	//初始化系统账户：托管账户与管理员账户
	if !account.ContainsAddress(common.CustodyAccountAddress) {
		account.CreateAccount(common.CustodyAccountAddress, "", 0)
	}
	if !account.ContainsAddress(global.AdminAddr) {
		account.CreateAccount(global.AdminAddr, "", 0)
	}

	log.Infof("已恢复 %d 个账户，管理员地址: %s", len(account.GetTotalAddress()), global.AdminAddr)

	//启动对外服务
	client.ListenRequest()
}
