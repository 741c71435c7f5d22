package campaign

import (
	"errors"
	"testing"
	"time"

	"github.com/crowdfundV2/event"
	"github.com/crowdfundV2/meta"
)

func TestCreateCampaign(t *testing.T) {
	event.Events = nil
	now := time.Now().Unix()
	before := len(registry)

	id, err := CreateCampaign("creator", 1000, now+3600, now+3600+86400)
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if id != before+1 {
		t.Errorf("id应单调递增: %d", id)
	}
	c, err := Get(id)
	if err != nil {
		t.Fatalf("读取新活动失败: %v", err)
	}
	if c.Pledged != 0 || c.Claimed || !c.CanOperate || len(c.Donors) != 0 {
		t.Errorf("新活动初始状态错误: %+v", c)
	}

	// Created事件携带的id必须是实际分配的id
	evs := event.GetByCampaign(id)
	if len(evs) != 1 || evs[0].Type != meta.EventCreated {
		t.Fatalf("应有一条Created事件: %v", evs)
	}
	if evs[0].CampaignId != id || evs[0].Amount != 1000 || evs[0].Address != "creator" {
		t.Errorf("Created事件字段错误: %+v", evs[0])
	}
	if evs[0].StartTime != now+3600 || evs[0].EndTime != now+3600+86400 {
		t.Errorf("Created事件时间窗口错误: %+v", evs[0])
	}

	// 第二次创建继续递增
	id2, _ := CreateCampaign("creator", 1000, now+3600, now+7200)
	if id2 != id+1 {
		t.Errorf("id应连续递增: %d -> %d", id, id2)
	}
}

func TestCreateCampaignInvalidWindow(t *testing.T) {
	now := time.Now().Unix()
	before := len(registry)

	// 开始时间必须严格在未来
	if _, err := CreateCampaign("creator", 1000, now-1, now+3600); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("开始时间在过去应失败，实际: %v", err)
	}
	// 结束时间必须晚于开始时间
	if _, err := CreateCampaign("creator", 1000, now+3600, now+3600); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("结束不晚于开始应失败，实际: %v", err)
	}
	// 窗口长度不得超过90天
	if _, err := CreateCampaign("creator", 1000, now+3600, now+3600+91*24*3600); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("超过90天的窗口应失败，实际: %v", err)
	}
	// 目标金额必须为正
	if _, err := CreateCampaign("creator", 0, now+3600, now+7200); !errors.Is(err, ErrInvalidGoal) {
		t.Errorf("目标为0应失败，实际: %v", err)
	}
	// 空发起人会与已注销槽位的哨兵值混淆，必须拒绝
	if _, err := CreateCampaign("", 1000, now+3600, now+7200); !errors.Is(err, ErrInvalidCreator) {
		t.Errorf("空发起人应失败于ErrInvalidCreator，实际: %v", err)
	}

	// 失败的创建不推进id计数
	if len(registry) != before {
		t.Errorf("失败的创建改变了注册表: %d -> %d", before, len(registry))
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get(0); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("id=0 应不存在")
	}
	if _, err := Get(len(registry) + 100); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("越界id应不存在")
	}
}

func TestIsAdministrator(t *testing.T) {
	setupAccounts(t) // 设置 global.AdminAddr = "admin"
	if !IsAdministrator("admin") {
		t.Errorf("admin应被判定为管理员")
	}
	if IsAdministrator("creator") || IsAdministrator("") {
		t.Errorf("非管理员被误判")
	}
}
