package impl

import "neonchat/repositories"

var (
	_ repositories.UserRepository    = (*UserRepositoryImpl)(nil)
	_ repositories.ChannelRepository = (*ChannelRepositoryImpl)(nil)
	_ repositories.MessageRepository = (*MessageRepositoryImpl)(nil)
)
