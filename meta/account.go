package meta

//账户

type Account struct {
	Address    string //账户地址
	Balance    int    //账户余额
	PublicKey  []byte //账户公钥
	PrivateKey []byte //账户私钥
}

// 注册账户时返回给用户的账户信息
type ChainAccount struct {
	AccountAddress string `json:"account_address"`
	PublicKey      string `json:"public_key"`
	PrivateKey     string `json:"private_key"`
}
