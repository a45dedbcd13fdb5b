package main

import (
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/yourbasic/bit"

	"parkminer/mine_config"
	"parkminer/rock-share/base/logger"
	"parkminer/rock-share/global/model/mine"
	"parkminer/utils"
)

// BuildTransaction 一条记录生成一条事务。
// 4个普通项 + 1个违章复合项(code+描述) + 1个罚款档位层级项,6个字段都必须非空
func BuildTransaction(record []string) (mine.Transaction, error) {
	if len(record) != mine_config.FieldNum {
		return nil, utils.ErrBadRecord
	}
	fields := make([]string, mine_config.FieldNum)
	for i, f := range record {
		fields[i] = strings.TrimSpace(f)
		if fields[i] == "" {
			return nil, utils.ErrBadRecord
		}
	}

	violationItem := mine_config.ViolationPrefix +
		fields[mine_config.FieldViolationCode] + mine_config.ItemConn + fields[mine_config.FieldViolationDesc]
	hierarchicalItem := fields[mine_config.FieldFineTier] + mine_config.ItemConn + violationItem

	// 项标签可能撞车,mapset去重
	s := mapset.NewSet()
	s.Add(fields[mine_config.FieldBorough])
	s.Add(fields[mine_config.FieldTimePeriod])
	s.Add(fields[mine_config.FieldFineTier])
	s.Add(fields[mine_config.FieldVehicleClass])
	s.Add(violationItem)
	s.Add(hierarchicalItem)

	txn := make(mine.Transaction, s.Cardinality())
	for _, item := range s.ToSlice() {
		txn[item.(string)] = struct{}{}
	}
	return txn, nil
}

// LoadTransactions 读入整个事务文件,任何一行异常都让整次运行失败
func LoadTransactions(path string) ([]mine.Transaction, error) {
	data, err := utils.GetCsvDataWithFields(path, mine_config.FieldNum)
	if err != nil {
		return nil, err
	}
	transactions := make([]mine.Transaction, 0, len(data))
	for lineNo, record := range data {
		txn, err := BuildTransaction(record)
		if err != nil {
			logger.Error("malformed record at line %d: %v", lineNo+1, record)
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}

// BuildItemIndex 构建倒排索引:项 -> 出现该项的事务行号位图
func BuildItemIndex(task *MineTask) {
	for rowId, txn := range task.Transactions {
		for item := range txn {
			if rows, ok := task.ItemRows[item]; ok {
				task.ItemRows[item] = rows.Add(rowId)
			} else {
				task.ItemRows[item] = bit.New(rowId)
			}
		}
	}
	task.TotalTxn = len(task.Transactions)
}
