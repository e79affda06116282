package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"hrms-backend/config"
	s3client "hrms-backend/s3"
)

func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 не настроен, архивация файлов отключена")
		return
	}
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось, ListBuckets вернул ошибку")
	}

	log.Info("S3 клиент успешно инициализирован")
}
