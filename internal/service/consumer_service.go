package service

import (
	"context"
	"encoding/json"
	"log"

	"circletel-admin-be/internal/dto"
	"circletel-admin-be/internal/pkg/mailer"
	"circletel-admin-be/internal/repository/specification"
	"circletel-admin-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the email worker. Services queue an EmailJobMessage
// instead of dialing SMTP inline, so a slow mail server never holds up an
// admin request.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var job dto.EmailJobMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		log.Printf("[ERROR] Failed to unmarshal email job: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: job.OrderId})
	if err != nil {
		log.Printf("[ERROR] Failed to load order %s for email job: %v", job.OrderId, err)
		msg.Nack() // Retriable
		return
	}
	if order == nil {
		log.Printf("[WARN] Order %s gone, dropping email job", job.OrderId)
		msg.Ack()
		return
	}

	switch job.Kind {
	case dto.EmailJobServiceActivated:
		prorata := 0.0
		if order.ProrataAmount != nil {
			prorata = *order.ProrataAmount
		}
		if order.NextBillingDate == nil {
			log.Printf("[WARN] Order %s has no next billing date, dropping activation email", job.OrderId)
			msg.Ack()
			return
		}
		err = cs.emailService.SendServiceActivated(order, prorata, *order.NextBillingDate)

	case dto.EmailJobInstallationScheduled:
		if order.InstallationScheduledDate == nil {
			log.Printf("[WARN] Order %s has no scheduled date, dropping schedule email", job.OrderId)
			msg.Ack()
			return
		}
		err = cs.emailService.SendInstallationScheduled(order, *order.InstallationScheduledDate)

	default:
		log.Printf("[ERROR] Unknown email job kind %q", job.Kind)
		msg.Ack()
		return
	}

	if err != nil {
		log.Printf("[ERROR] Failed to send %s email for order %s: %v", job.Kind, order.OrderNumber, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Sent %s email for order %s", job.Kind, order.OrderNumber)
	msg.Ack()
}
