package global

/*
 *	节点用到的全局变量
 */

var EventLog = make(chan interface{}, 20) // 已提交的领域事件，会通过客户端推送到前端

/*
 * 以下参数根据命令行参数和配置文件确定，不要重新赋值
 */
var RootDir string   // 项目根目录
var AdminAddr string // 管理员账户地址（部署时确定，核心不修改）
var RedisAddr string // redis服务地址，为空时不推送事件
var HttpAddr string  // 对外http监听地址
