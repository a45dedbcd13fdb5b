package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LinkinStars/golang-util/gu"
)

// GetCsvData 读入整个csv,无表头
func GetCsvData(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Println("opens a csv failed, err:", err)
		return nil, ErrOpenCsv
	}
	defer f.Close()
	reader := csv.NewReader(f)
	data, err := reader.ReadAll()
	if err != nil {
		fmt.Println("read a csv failed, err:", err)
		return nil, ErrReadCsv
	}
	return data, nil
}

// GetCsvDataWithFields 读入csv并校验每行字段数,字段数不符直接报错
func GetCsvDataWithFields(path string, fieldNum int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Println("opens a csv failed, err:", err)
		return nil, ErrOpenCsv
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = fieldNum
	data, err := reader.ReadAll()
	if err != nil {
		fmt.Println("read a csv failed, err:", err)
		return nil, ErrBadRecord
	}
	return data, nil
}

// CreateTextFile 将整段文本写入文件,目录不存在时先创建
func CreateTextFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := gu.CreateDirIfNotExist(dir); err != nil {
			return ErrWriteReport
		}
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("create file failed, err:%v\n", err)
		return ErrWriteReport
	}
	defer f.Close()
	if _, err = f.WriteString(content); err != nil {
		fmt.Printf("write file failed, err:%v\n", err)
		return ErrWriteReport
	}
	return nil
}

// CreateCsv 保留的通用csv写出
func CreateCsv(path string, data [][]string) error {
	csvFile, err := os.Create(path)
	if err != nil {
		return ErrWriteReport
	}
	defer csvFile.Close()
	csvWriter := csv.NewWriter(csvFile)
	if err = csvWriter.WriteAll(data); err != nil {
		fmt.Printf("error (%v)", err)
		return err
	}
	return nil
}
