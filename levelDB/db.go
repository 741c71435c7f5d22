package levelDB

import (
	"github.com/cloudflare/cfssl/log"
	"github.com/syndtr/goleveldb/leveldb"
)

var db *leveldb.DB
var err error

func InitDB(path string) {
	db, err = leveldb.OpenFile(path, nil)
	if err != nil {
		log.Error("db init err:", err)
	}
}

// 关闭并重置全局句柄（单元测试用，避免指向已删除的临时目录）
func CloseDB() {
	if db != nil {
		db.Close()
		db = nil
	}
}

func DBGet(key string) []byte {
	if db == nil { // 未初始化（单元测试场景），视为无数据
		return nil
	}
	data, err := db.Get([]byte(key), nil)
	if err != nil {
		log.Error("db get err:", err)
		return nil
	}
	return data
}

func DBPut(key string, value []byte) {
	if db == nil {
		return
	}
	err = db.Put([]byte(key), value, nil)
	if err != nil {
		log.Error("db put err:", err)
	}
}

func DBDelete(key string) {
	if db == nil {
		return
	}
	err = db.Delete([]byte(key), nil)
	if err != nil {
		log.Error("db delete err", err)
	}
}

// 将多个key的写入合并为一次原子提交，作为一次操作的事务边界
func DBBatchPut(kvs map[string][]byte) error {
	if db == nil {
		return nil
	}
	batch := new(leveldb.Batch)
	for k, v := range kvs {
		batch.Put([]byte(k), v)
	}
	err = db.Write(batch, nil)
	if err != nil {
		log.Error("db batch write err:", err)
	}
	return err
}
