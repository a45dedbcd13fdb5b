package main

import (
	"runtime"
	"sync"

	"github.com/yourbasic/bit"

	"parkminer/rock-share/global/model/mine"
)

var GlobalTask = make(map[int64]*MineTask) //[taskID,MineTask]
var GlobalTaskLock sync.RWMutex            //并发写入操作,加锁

// MineTask 一次挖掘任务的全部状态,级间只由挖掘主循环更新
type MineTask struct {
	TaskId     int64
	Support    float64
	Confidence float64

	Transactions []mine.Transaction
	TotalTxn     int

	// ItemRows 倒排索引: 项 -> 出现该项的事务行号位图
	ItemRows map[string]*bit.Set

	// 逐层累积的频繁项集和全部支持计数
	Frequent      mine.FrequentItemsets
	SupportCounts map[string]mine.ItemsetSupport

	Maximal []mine.Itemset
	Rules   []mine.Rule

	HasError bool
}

func InitMineTask(taskId int64, support, confidence float64) *MineTask {
	GlobalTaskLock.Lock()
	defer GlobalTaskLock.Unlock()
	task, flag := GlobalTask[taskId]
	if !flag {
		task = &MineTask{
			TaskId:        taskId,
			Support:       support,
			Confidence:    confidence,
			ItemRows:      make(map[string]*bit.Set),
			Frequent:      make(mine.FrequentItemsets),
			SupportCounts: make(map[string]mine.ItemsetSupport),
		}
		GlobalTask[taskId] = task
	}
	return task
}

func GetMineTask(taskId int64) *MineTask {
	GlobalTaskLock.RLock()
	defer GlobalTaskLock.RUnlock()
	return GlobalTask[taskId]
}

// ClearMemory 任务结束释放状态
func ClearMemory(taskId int64) {
	GlobalTaskLock.Lock()
	defer GlobalTaskLock.Unlock()
	delete(GlobalTask, taskId)
}

var TaskCh = GenTokenChan(0.5) // 支持计数与候选生成共享一组协程（类似于信号量）

func GenTokenChan(coefficient float64) chan struct{} {
	// 留1个核给调度
	cpuNum := runtime.NumCPU() - 1
	if cpuNum <= 0 {
		cpuNum = 1
	}
	tokenNum := int(coefficient * float64(cpuNum))
	if tokenNum <= 0 {
		tokenNum = 1
	}
	ch := make(chan struct{}, tokenNum)
	for i := 0; i < tokenNum; i++ {
		ch <- struct{}{}
	}
	return ch
}
