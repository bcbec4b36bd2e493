// 手动生成初始测验题库脚本
//
// 首次部署或新增学科时使用，调用 AI 为每个学科预生成一套测验，
// 避免第一个学生要等出题接口。
//
// 用法: go run scripts/seed_quizzes.go

package main

import (
	"fmt"
	"log"
	"os"

	"tutorhub_backend/internal/config"
	"tutorhub_backend/internal/model"
	"tutorhub_backend/internal/service"
	"tutorhub_backend/pkg/database"
	"tutorhub_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

// seedConfig 只取脚本需要的配置段 字段名和 config.yaml 的下划线键对齐
type seedConfig struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	Database struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		User      string `yaml:"user"`
		Password  string `yaml:"password"`
		DBName    string `yaml:"dbname"`
		Charset   string `yaml:"charset"`
		ParseTime bool   `yaml:"parsetime"`
	} `yaml:"database"`
	AI struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
	} `yaml:"ai"`
}

var seedSubjects = []string{"Math", "Physics", "Chemistry", "English", "History"}

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var sc seedConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: sc.Server.Port, Mode: sc.Server.Mode},
		Database: config.DatabaseConfig{
			Host:      sc.Database.Host,
			Port:      sc.Database.Port,
			User:      sc.Database.User,
			Password:  sc.Database.Password,
			DBName:    sc.Database.DBName,
			Charset:   sc.Database.Charset,
			ParseTime: sc.Database.ParseTime,
		},
		AI: config.AIConfig{BaseURL: sc.AI.BaseURL, APIKey: sc.AI.APIKey, Model: sc.AI.Model},
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	aiService := service.NewAIService(cfg.AI)

	log.Println("开始生成初始题库...")
	for _, subject := range seedSubjects {
		var count int64
		db.Model(&model.Quiz{}).Where("subject = ?", subject).Count(&count)
		if count > 0 {
			log.Printf("%s 已有题库，跳过", subject)
			continue
		}

		generated, err := aiService.GenerateQuestions(subject, "medium", 10)
		if err != nil {
			log.Printf("%s 出题失败: %v", subject, err)
			continue
		}

		quiz := &model.Quiz{
			Title:      fmt.Sprintf("%s quiz (medium)", subject),
			Subject:    subject,
			Difficulty: "medium",
		}
		for i, g := range generated {
			quiz.Questions = append(quiz.Questions, model.QuizQuestion{
				Prompt:   g.Prompt,
				Options:  g.Options,
				Answer:   g.Answer,
				Position: i,
			})
		}

		if err := db.Create(quiz).Error; err != nil {
			log.Printf("%s 入库失败: %v", subject, err)
			continue
		}
		log.Printf("%s 生成 %d 道题", subject, len(quiz.Questions))
	}
	log.Println("完成！")
}
