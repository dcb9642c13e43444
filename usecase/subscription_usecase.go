package usecase

import (
	"context"

	"my-tube/domain/apperror"
	"my-tube/domain/model"
	"my-tube/domain/repository"
)

// SubscribeResult reports the subscription state after a toggle.
type SubscribeResult struct {
	Subscribed bool `json:"subscribed"`
}

// SubscriberList is a resolved user list plus its total count.
type SubscriberList struct {
	Users []model.ChannelUser `json:"users"`
	Total int64               `json:"total"`
}

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, caller model.User, channelID string) (SubscribeResult, error)
	ListSubscribers(ctx context.Context, channelID string) (SubscriberList, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) (SubscriberList, error)
}

type subscriptionUsecase struct {
	subRepo  repository.ISubscription
	userRepo repository.IUser
	stats    repository.IStatsCache
}

func NewSubscriptionUsecase(subRepo repository.ISubscription, userRepo repository.IUser, stats repository.IStatsCache) ISubscriptionUsecase {
	return &subscriptionUsecase{subRepo: subRepo, userRepo: userRepo, stats: stats}
}

// Toggle subscribes the caller to the channel, or unsubscribes when a
// subscription already exists. Self-subscription is rejected.
func (u *subscriptionUsecase) Toggle(ctx context.Context, caller model.User, channelID string) (SubscribeResult, error) {
	channel, err := parseID(channelID, "channel id")
	if err != nil {
		return SubscribeResult{}, err
	}
	if channel == caller.ID {
		return SubscribeResult{}, apperror.InvalidInput("cannot subscribe to your own channel")
	}
	if _, err := u.userRepo.GetByID(ctx, channel); err != nil {
		return SubscribeResult{}, err
	}

	existing, err := u.subRepo.Find(ctx, caller.ID, channel)
	if err == nil {
		if err := u.subRepo.Delete(ctx, existing.ID); err != nil {
			return SubscribeResult{}, err
		}
		u.invalidateStats(ctx, channel.Hex())
		return SubscribeResult{Subscribed: false}, nil
	}
	if apperror.KindOf(err) != apperror.KindNotFound {
		return SubscribeResult{}, err
	}

	if _, err := u.subRepo.Create(ctx, model.Subscription{
		Subscriber: caller.ID,
		Channel:    channel,
	}); err != nil {
		return SubscribeResult{}, err
	}
	u.invalidateStats(ctx, channel.Hex())
	return SubscribeResult{Subscribed: true}, nil
}

func (u *subscriptionUsecase) ListSubscribers(ctx context.Context, channelID string) (SubscriberList, error) {
	channel, err := parseID(channelID, "channel id")
	if err != nil {
		return SubscriberList{}, err
	}
	users, err := u.subRepo.ListSubscribers(ctx, channel)
	if err != nil {
		return SubscriberList{}, err
	}
	total, err := u.subRepo.CountByChannel(ctx, channel)
	if err != nil {
		return SubscriberList{}, err
	}
	if users == nil {
		users = []model.ChannelUser{}
	}
	return SubscriberList{Users: users, Total: total}, nil
}

func (u *subscriptionUsecase) ListSubscribedChannels(ctx context.Context, subscriberID string) (SubscriberList, error) {
	subscriber, err := parseID(subscriberID, "subscriber id")
	if err != nil {
		return SubscriberList{}, err
	}
	users, err := u.subRepo.ListSubscribedChannels(ctx, subscriber)
	if err != nil {
		return SubscriberList{}, err
	}
	total, err := u.subRepo.CountBySubscriber(ctx, subscriber)
	if err != nil {
		return SubscriberList{}, err
	}
	if users == nil {
		users = []model.ChannelUser{}
	}
	return SubscriberList{Users: users, Total: total}, nil
}

func (u *subscriptionUsecase) invalidateStats(ctx context.Context, channelID string) {
	_ = u.stats.InvalidateChannelStats(ctx, channelID)
}
