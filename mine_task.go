package main

import (
	"time"

	"parkminer/mine_config"
	"parkminer/rock-share/base/logger"
	"parkminer/utils"
)

// DigPatterns 一次完整的挖掘:校验参数 -> 摄入 -> 逐层挖掘 -> 极大项集 -> 规则 -> 报告。
// 返回报告路径、频繁项集数、规则数和耗时
func DigPatterns(request *MineRequest) (string, int, int, int64, error) {
	startTime := time.Now().UnixMilli()
	taskId := startTime
	logger.Infof("taskId:%v, 模式挖掘开始, input:%v, support:%v, confidence:%v",
		taskId, request.Input, request.Support, request.Confidence)

	// 阈值必须在[0,1]内,摄入之前先拦掉
	if request.Support < 0 || request.Support > 1 || request.Confidence < 0 || request.Confidence > 1 {
		logger.Error("taskId:%v, 非法阈值 support:%v confidence:%v", taskId, request.Support, request.Confidence)
		return "", 0, 0, 0, utils.ErrThreshold
	}

	transactions, err := LoadTransactions(request.Input)
	if err != nil {
		logger.Error("taskId:%v, 摄入失败:%v", taskId, err)
		return "", 0, 0, 0, err
	}

	task := InitMineTask(taskId, request.Support, request.Confidence)
	defer ClearMemory(taskId)
	task.Transactions = transactions
	BuildItemIndex(task)
	logger.Infof("taskId:%v, 事务数:%v, 词表大小:%v", taskId, task.TotalTxn, len(task.ItemRows))

	Apriori(task)
	if task.HasError {
		return "", 0, 0, 0, utils.ErrMineFailed
	}

	// 没挖出频繁项集不算错,报告照常输出空段
	task.Maximal = FindMaximalItemsets(task.Frequent)
	task.Rules = GenerateRules(task, FineTierTrivialFilter)

	output := request.Output
	if output == "" {
		output = mine_config.DefaultOutput
	}
	if err := WriteReport(task, output); err != nil {
		logger.Error("taskId:%v, 报告写出失败:%v", taskId, err)
		return "", 0, 0, 0, err
	}

	spent := time.Now().UnixMilli() - startTime
	printSummary(task, output, spent)
	logger.Infof("taskId:%v挖掘已完成,耗时%dms, 频繁项集:%v;极大项集:%v;规则:%v",
		taskId, spent, len(task.Frequent), len(task.Maximal), len(task.Rules))
	return output, len(task.Frequent), len(task.Rules), spent, nil
}
