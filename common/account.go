package common

// levelDB 所有账户的key （key: AccountsKey - val: 所有账户信息）
const AccountsKey = "levelDBAccountsKey"

// 资金托管账户地址（所有认捐资金在提取/退款前由该账户托管）
const CustodyAccountAddress = "CampaignCustodyAddress"

// levelDB 账户私钥的key（在用户注册时存储， key: 账户地址+AccountsPrivateKeySuffix - val: 该账户的私钥）
const AccountsPrivateKeySuffix = "PrivateKeySuffix"

// 注册账户时的初始余额（方便测试）
const InitBalance = 100000
