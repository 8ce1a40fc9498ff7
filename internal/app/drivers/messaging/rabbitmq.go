package messaging

import (
	"fmt"
	"log"
	"medicare-portal/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker. An empty host disables messaging and returns nil.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	if driverConfig.RabbitMQ.Host == "" {
		log.Println("RabbitMQ host is empty, session signals will not be published")
		return nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
