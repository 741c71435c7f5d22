package config

import (
	"testing"

	"github.com/crowdfundV2/global"
)

func TestConfigGet(t *testing.T) {
	global.RootDir = ".."
	if Get("env.language") != "golang" {
		t.Errorf("err")
	}
	if GetString("admin.address") == "" {
		t.Errorf("管理员地址不能为空")
	}
	if GetInt("account.initBalance") <= 0 {
		t.Errorf("初始余额必须为正")
	}
}
