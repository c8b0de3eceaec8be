package v765

import (
	"mcwire/packet"
	"mcwire/protocol"
	"mcwire/versions/common"
)

func init() {
	cat := protocol.NewCatalog(Version)

	cat.RegisterC2S(protocol.Handshaking, packet.Descriptor{
		ID: 0x00, Name: "handshake",
		New: func() packet.Inbound { return &common.Handshake{} },
	})

	cat.RegisterC2S(protocol.Status, packet.Descriptor{
		ID: 0x00, Name: "status_request",
		New: func() packet.Inbound { return &common.StatusRequest{} },
	})
	cat.RegisterS2C(protocol.Status, packet.Descriptor{
		ID: 0x00, Name: "status_response",
		New: func() packet.Inbound { return &common.StatusResponse{} },
	})
	cat.RegisterC2S(protocol.Status, packet.Descriptor{
		ID: 0x01, Name: "ping_request",
		New: func() packet.Inbound { return &common.PingRequest{} },
	})
	cat.RegisterS2C(protocol.Status, packet.Descriptor{
		ID: 0x01, Name: "pong_response",
		New: func() packet.Inbound { return &common.PongResponse{} },
	})

	cat.RegisterC2S(protocol.Login, packet.Descriptor{
		ID: 0x00, Name: "login_start",
		New: func() packet.Inbound { return &LoginStart{} },
	})
	cat.RegisterS2C(protocol.Login, packet.Descriptor{
		ID: 0x00, Name: "login_disconnect",
		New: func() packet.Inbound { return &common.LoginDisconnect{} },
	})
	cat.RegisterS2C(protocol.Login, packet.Descriptor{
		ID: 0x01, Name: "encryption_request",
		New: func() packet.Inbound { return &common.EncryptionRequest{} },
	})
	cat.RegisterC2S(protocol.Login, packet.Descriptor{
		ID: 0x01, Name: "encryption_response",
		New: func() packet.Inbound { return &common.EncryptionResponse{} },
	})
	cat.RegisterS2C(protocol.Login, packet.Descriptor{
		ID: 0x02, Name: "login_success",
		New: func() packet.Inbound { return &LoginSuccess{} },
	})
	cat.RegisterC2S(protocol.Login, packet.Descriptor{
		ID: 0x02, Name: "login_plugin_response",
		New: func() packet.Inbound { return &LoginPluginResponse{} },
	})
	cat.RegisterC2S(protocol.Login, packet.Descriptor{
		ID: 0x03, Name: "login_acknowledged",
		New: func() packet.Inbound { return &LoginAcknowledged{} },
	})
	cat.RegisterS2C(protocol.Login, packet.Descriptor{
		ID: 0x03, Name: "set_compression",
		New: func() packet.Inbound { return &common.SetCompression{} },
	})
	cat.RegisterS2C(protocol.Login, packet.Descriptor{
		ID: 0x04, Name: "login_plugin_request",
		New: func() packet.Inbound { return &LoginPluginRequest{} },
	})

	cat.RegisterC2S(protocol.Configuration, packet.Descriptor{
		ID: 0x02, Name: "serverbound_plugin_message",
		New: func() packet.Inbound { return &ServerboundPluginMessage{} },
	})
	cat.RegisterS2C(protocol.Configuration, packet.Descriptor{
		ID: 0x01, Name: "clientbound_plugin_message",
		New: func() packet.Inbound { return &ClientboundPluginMessage{} },
	})
	cat.RegisterS2C(protocol.Configuration, packet.Descriptor{
		ID: 0x02, Name: "configuration_disconnect",
		New: func() packet.Inbound { return &ConfigurationDisconnect{} },
	})
	cat.RegisterS2C(protocol.Configuration, packet.Descriptor{
		ID: 0x03, Name: "finish_configuration",
		New: func() packet.Inbound { return &FinishConfiguration{} },
	})
	cat.RegisterC2S(protocol.Configuration, packet.Descriptor{
		ID: 0x03, Name: "acknowledge_finish_configuration",
		New: func() packet.Inbound { return &AcknowledgeFinishConfiguration{} },
	})
	cat.RegisterS2C(protocol.Configuration, packet.Descriptor{
		ID: 0x04, Name: "configuration_keep_alive",
		New: func() packet.Inbound { return &ConfigurationKeepAlive{} },
	})
	cat.RegisterC2S(protocol.Configuration, packet.Descriptor{
		ID: 0x04, Name: "configuration_keep_alive_response",
		New: func() packet.Inbound { return &ConfigurationKeepAlive{} },
	})

	cat.RegisterS2C(protocol.Play, packet.Descriptor{
		ID: 0x24, Name: "play_keep_alive",
		New: func() packet.Inbound { return &PlayKeepAlive{} },
	})
	cat.RegisterC2S(protocol.Play, packet.Descriptor{
		ID: 0x18, Name: "play_keep_alive_response",
		New: func() packet.Inbound { return &PlayKeepAliveResponse{} },
	})
	cat.RegisterS2C(protocol.Play, packet.Descriptor{
		ID: 0x1D, Name: "play_disconnect",
		New: func() packet.Inbound { return &PlayDisconnect{} },
	})
	cat.RegisterS2C(protocol.Play, packet.Descriptor{
		ID: 0x67, Name: "system_chat_message",
		New: func() packet.Inbound { return &SystemChatMessage{} },
	})

	protocol.Register(cat)
}
