package campaign

import "github.com/crowdfundV2/global"

// 管理员判定。管理员地址在节点启动时由配置确定，核心不修改它
func IsAdministrator(address string) bool {
	return address != "" && address == global.AdminAddr
}
