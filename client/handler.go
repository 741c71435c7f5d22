package client

import (
	"encoding/hex"
	"net/http"
	"strconv"

	"github.com/cloudflare/cfssl/log"
	"github.com/gin-gonic/gin"

	"github.com/crowdfundV2/account"
	"github.com/crowdfundV2/campaign"
	"github.com/crowdfundV2/common"
	"github.com/crowdfundV2/config"
	"github.com/crowdfundV2/event"
	"github.com/crowdfundV2/levelDB"
	"github.com/crowdfundV2/meta"
	"github.com/crowdfundV2/util"
)

// 创建众筹活动
func createCampaign(ctx *gin.Context) {
	pc := meta.PostCampaign{}
	_ = ctx.ShouldBind(&pc)

	if !account.ContainsAddress(pc.Creator) {
		log.Error("发起地址不存在")
		ctx.JSON(http.StatusOK, errResponse("发起地址不存在"))
		return
	}
	id, err := campaign.CreateCampaign(pc.Creator, pc.Goal, pc.StartTime, pc.EndTime)
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(map[string]int{"campaign_id": id}))
}

// 认捐
func pledge(ctx *gin.Context) {
	pp := meta.PostPledge{}
	_ = ctx.ShouldBind(&pp)

	if !account.ContainsAddress(pp.Donor) {
		log.Error("捐赠地址不存在")
		ctx.JSON(http.StatusOK, errResponse("捐赠地址不存在"))
		return
	}
	if err := campaign.Pledge(pp.CampaignId, pp.Donor, pp.Amount); err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(""))
}

// 撤回认捐
func unpledge(ctx *gin.Context) {
	pp := meta.PostPledge{}
	_ = ctx.ShouldBind(&pp)

	if err := campaign.Unpledge(pp.CampaignId, pp.Donor, pp.Amount); err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(""))
}

// 发起人提取全部认捐并终结活动
func claim(ctx *gin.Context) {
	ps := meta.PostSettle{}
	_ = ctx.ShouldBind(&ps)

	if err := campaign.ClaimAllAndEnd(ps.CampaignId, ps.Caller); err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(""))
}

// 注销活动
func cancel(ctx *gin.Context) {
	ps := meta.PostSettle{}
	_ = ctx.ShouldBind(&ps)

	if err := campaign.Cancel(ps.CampaignId, ps.Caller); err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(""))
}

// 管理员全量退款
func refund(ctx *gin.Context) {
	ps := meta.PostSettle{}
	_ = ctx.ShouldBind(&ps)

	if err := campaign.RefundAll(ps.CampaignId, ps.Caller); err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(""))
}

// 管理员急停开关
func toggleCanOperate(ctx *gin.Context) {
	ps := meta.PostSettle{}
	_ = ctx.ShouldBind(&ps)

	if err := campaign.ToggleCanOperate(ps.CampaignId, ps.Caller); err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(""))
}

// 活动注册表全量快照（包含已注销的零值槽位）
func listCampaigns(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, goodResponse(campaign.List()))
}

// 查询单个活动
func getCampaign(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Query("id"))
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse("活动id非法"))
		return
	}
	c, err := campaign.Get(id)
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(c))
}

// 注册账户：生成公私钥，公钥hash作为账户地址
func registerAccount(ctx *gin.Context) {
	//首先生成公私钥
	priKey, pubKey := util.GetKeyPair()
	//将公钥hash作为账户地址,256位
	pubHash, _ := util.CalculateHash(pubKey)
	address := hex.EncodeToString(pubHash)

	// 存储账户的私钥
	levelDB.DBPut(address+common.AccountsPrivateKeySuffix, priKey)

	initBalance := config.GetInt("account.initBalance")
	account.CreateAccount(address, string(pubKey), initBalance)
	log.Infof("[client] 注册账户 %s，初始余额 %d", address, initBalance)

	res := meta.ChainAccount{
		AccountAddress: address,
		PublicKey:      string(pubKey),
		PrivateKey:     string(priKey),
	}
	ctx.JSON(http.StatusOK, goodResponse(res))
}

// 查询账户
func getAccount(ctx *gin.Context) {
	address := ctx.Query("address")
	if !account.ContainsAddress(address) {
		ctx.JSON(http.StatusOK, errResponse("账户地址不存在"))
		return
	}
	a := account.GetAccount(address)
	a.PrivateKey = nil // 不对外返回私钥
	ctx.JSON(http.StatusOK, goodResponse(a))
}

// 查询活动事件
func getEvents(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Query("campaignId"))
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse("活动id非法"))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(event.GetByCampaign(id)))
}

func goodResponse(data interface{}) meta.HttpResponse {
	res := meta.HttpResponse{
		Data: data,
		Code: 20000,
	}
	return res
}

// 出现异常，返回异常信息
func errResponse(errMsg string) meta.HttpResponse {
	res := meta.HttpResponse{
		Error: errMsg,
		Data:  "",
		Code:  20000,
	}
	return res
}
