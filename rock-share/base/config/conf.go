package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// All 全部配置索引
var All *AllConfig

var DefaultPath = "./config"
var DebugPath = "./base/config"

// InitConfig 初始化读取配置文件
func InitConfig() {
	v := viper.New()
	//默认配置文件所在目录
	v.AddConfigPath(DefaultPath)
	v.SetConfigName("config")
	configType := "yml"
	v.SetConfigType(configType)

	// 读取配置
	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}

	// SetDefault使用：全部以默认配置写入
	for k, val := range v.AllSettings() {
		v.SetDefault(k, val)
	}

	//增量配置
	if os.Getenv("DEBUG") == "true" {
		fmt.Println("debugEnv DEBUG=true")
		debug := "debug"
		newConfigPath := DebugPath + "/" + debug + ".yml"
		exists, _ := isExists(newConfigPath)
		if exists {
			fmt.Printf("%s exists\n", newConfigPath)
			v.AddConfigPath(DebugPath)
			v.SetConfigName(debug)
			v.SetConfigType(configType)
			if err := v.ReadInConfig(); err != nil {
				panic(err)
			}
		} else {
			fmt.Printf("%s not exists\n", newConfigPath)
		}
	}

	// 监控配置文件变化并热加载程序
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s", e.Name)
	})

	// 配置映射到结构体
	All = &AllConfig{}
	if err := v.Unmarshal(All); err != nil {
		panic(err)
	}

	if All.Miner.Support == 0 {
		All.Miner.Support = 0.1
	}
	if All.Miner.Confidence == 0 {
		All.Miner.Confidence = 0.6
	}
	if All.Miner.ResultDir == "" {
		All.Miner.ResultDir = "result"
	}

	// 这里可以做检查,如果配置文件相关配置项异常亦可以不启动
	fmt.Printf("config file content:\n%+v\n", *All)
}

// AllConfig 全部配置文件
type AllConfig struct {
	Server ServerConfig `mapstructure:"server_config"`
	Logger LoggerConfig `mapstructure:"logger_config"`
	Miner  MinerConfig  `mapstructure:"miner_config"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	HttpPort  string `mapstructure:"http_port"`
	SentryDsn string `mapstructure:"sentry_dsn"`
	MaxMemory int    `mapstructure:"max_memory"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string        `mapstructure:"level"`
	Path         string        `mapstructure:"path"`
	MaxAge       time.Duration `mapstructure:"max_age"`
	RotationTime time.Duration `mapstructure:"rotation_time"`
	RotationSize uint32        `mapstructure:"rotation_size"`
}

// MinerConfig 挖掘默认参数
type MinerConfig struct {
	Support    float64 `mapstructure:"support"`
	Confidence float64 `mapstructure:"confidence"`
	ResultDir  string  `mapstructure:"result_dir"`
}

// GetAppPath 获取项目运行时的绝对目录
func GetAppPath() string {
	return getCurrentAbPath()
}

// 获取绝对路径。。最终方案-全兼容
func getCurrentAbPath() string {
	dir := getCurrentAbPathByExecutable()
	tmpDir, _ := filepath.EvalSymlinks(os.TempDir())
	if strings.Contains(dir, tmpDir) {
		return getCurrentAbPathByCaller()
	}
	return dir
}

// 获取当前执行文件绝对路径
func getCurrentAbPathByExecutable() string {
	exePath, err := os.Executable()
	if err != nil {
		log.Fatal(err)
	}
	res, _ := filepath.EvalSymlinks(filepath.Dir(exePath))
	return res
}

// 获取当前执行文件绝对路径（go run）
func getCurrentAbPathByCaller() string {
	var abPath string
	_, filename, _, ok := runtime.Caller(0)
	if ok {
		abPath = path.Dir(filename)
	}
	return abPath
}

// 判断所给文件/文件夹是否存在
func isExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
