package main

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"parkminer/mine_config"
	"parkminer/rock-share/base/config"
	"parkminer/rock-share/base/logger"
)

func main() {
	// 带位置参数直接跑批: parkminer <filename> <min_sup> <min_conf> [output]
	if len(os.Args) > 1 {
		runBatch(os.Args[1:])
		return
	}

	go func() {
		err := http.ListenAndServe(":8081", nil)
		if err != nil {
			fmt.Printf("http.ListenAndServe failed, err:%s", err)
		}
	}()

	// 一些初始化配置
	config.InitConfig()
	all := config.All
	l := all.Logger
	ss := all.Server
	logger.InitLogger(l.Level, "parkminer", l.Path, l.MaxAge, l.RotationTime, l.RotationSize, ss.SentryDsn)
	r := gin.Default()

	r.POST("/mine", start)

	address := ":" + mine_config.GinPort
	if ss.HttpPort != "" {
		address = ":" + ss.HttpPort
	}
	r.Run(address)
}

// runBatch 批处理模式,成功退出码0,配置或摄入错误退出码1且不写报告
func runBatch(args []string) {
	if len(args) < 3 || len(args) > 4 {
		fmt.Fprintln(os.Stderr, "Usage: parkminer <filename> <min_sup> <min_conf> [output]")
		os.Exit(1)
	}
	minSup, errSup := strconv.ParseFloat(args[1], 64)
	minConf, errConf := strconv.ParseFloat(args[2], 64)
	if errSup != nil || errConf != nil {
		fmt.Fprintln(os.Stderr, "min_sup and min_conf must be numbers between 0 and 1")
		os.Exit(1)
	}

	request := &MineRequest{Input: args[0], Support: minSup, Confidence: minConf}
	if len(args) == 4 {
		request.Output = args[3]
	}
	p, _, _, _, err := DigPatterns(request)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Results written to %s\n", p)
}

func start(c *gin.Context) {
	var requestJson MineRequest
	if err := c.ShouldBindJSON(&requestJson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		fmt.Println("_____________________请求异常:")
		fmt.Println(err)
		return
	}
	// 没给的参数用配置默认值补齐
	if requestJson.Support == 0 {
		requestJson.Support = config.All.Miner.Support
	}
	if requestJson.Confidence == 0 {
		requestJson.Confidence = config.All.Miner.Confidence
	}
	if requestJson.Output == "" {
		requestJson.Output = path.Join(config.All.Miner.ResultDir,
			strconv.FormatInt(time.Now().UnixMilli(), 10)+".txt")
	}
	p, itemsetSize, ruleSize, t, e := DigPatterns(&requestJson)
	if e != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   e,
		})
	} else {
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"result_path":  p,
			"itemset_size": itemsetSize,
			"rule_size":    ruleSize,
			"spent_time":   t,
		})
	}
}
