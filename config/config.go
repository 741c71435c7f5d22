package config

import (
	viper2 "github.com/spf13/viper"

	"github.com/crowdfundV2/global"
)

func Get(key string) interface{} {
	viper := viper2.New()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(global.RootDir + "/config/")

	if err := viper.ReadInConfig(); err != nil {
		panic(err.Error())
	}
	return viper.Get(key)
}

func GetString(key string) string {
	v, _ := Get(key).(string)
	return v
}

func GetInt(key string) int {
	v, _ := Get(key).(int)
	return v
}
