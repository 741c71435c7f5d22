package meta

//众筹活动

type Campaign struct {
	Id         int      `json:"id"`          //活动id，创建时分配，单调递增且永不复用
	Creator    string   `json:"creator"`     //发起人地址
	Goal       int      `json:"goal"`        //众筹目标金额
	Pledged    int      `json:"pledged"`     //当前认捐总额，与认捐账本保持一致
	StartTime  int64    `json:"start_time"`  //开始时间（unix秒）
	EndTime    int64    `json:"end_time"`    //结束时间（unix秒）
	Donors     []string `json:"donors"`      //捐赠人名单，按首次认捐顺序，只增不减
	Claimed    bool     `json:"claimed"`     //发起人是否已提取（不可逆）
	CanOperate bool     `json:"can_operate"` //是否可操作（管理员急停开关）
}
