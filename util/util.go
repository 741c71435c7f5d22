package util

import (
	"os"

	"github.com/cloudflare/cfssl/log"
)

// 判断文件或文件夹是否存在
func FileExists(path string) bool {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsExist(err) {
			return true
		}
		if os.IsNotExist(err) {
			return false
		}
		log.Info(err)
		return false
	}
	return true
}

// 判断数组是否包含该元素
func Contains(arr []string, target string) bool {
	for _, a := range arr {
		if a == target {
			return true
		}
	}
	return false
}

// 统一处理json序列化/反序列化错误的日志
func DealJsonErr(funcName string, err error) {
	if err != nil {
		log.Error("["+funcName+"] json marshal or unmarshal failed. err:", err)
	}
}
