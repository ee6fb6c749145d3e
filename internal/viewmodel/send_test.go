package viewmodel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/parlor/internal/chat"
	"github.com/zjrosen/parlor/internal/mocks"
)

func TestSendMessage_Text(t *testing.T) {
	h := newHarness(t)
	vm := h.build(t)

	require.True(t, vm.SendMessage(context.Background(), "hello", ""))

	require.Len(t, h.room.sent, 1)
	require.Equal(t, chat.EventTypeMessage, h.room.sent[0].eventType)
	require.Equal(t, chat.Content{"msgtype": chat.MsgTypeText, "body": "hello"}, h.room.sent[0].content)
	require.Nil(t, h.room.sent[0].attachments)
}

func TestSendMessage_EmptyIsSilentFailure(t *testing.T) {
	h := newHarness(t)
	vm := h.build(t)

	require.False(t, vm.SendMessage(context.Background(), "", ""))
	require.False(t, vm.SendMessage(context.Background(), "/me", ""))
	require.Empty(t, h.room.sent)
	require.Empty(t, vm.Error())
}

func TestSendMessage_ArchivedNeverSends(t *testing.T) {
	h := newHarness(t)
	h.room.archived = true
	vm := h.build(t)

	for _, msg := range []string{"hello", "/me waves", "/join #a"} {
		require.False(t, vm.SendMessage(context.Background(), msg, ""))
	}
	require.Empty(t, h.room.sent)
}

func TestSendMessage_Reply(t *testing.T) {
	h := newHarness(t)
	vm := h.build(t)

	require.True(t, vm.SendMessage(context.Background(), "agreed", "$orig"))

	content := h.room.sent[0].content
	require.Equal(t, map[string]any{
		"m.in_reply_to": map[string]any{"event_id": "$orig"},
	}, content["m.relates_to"])
	require.Equal(t, "$orig", replyTarget(content))
}

func TestSendMessage_SlashCommands(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		body    string
		msgtype string
	}{
		{name: "me", input: "/me waves", body: "waves", msgtype: chat.MsgTypeEmote},
		{name: "shrug", input: "/shrug ok", body: `¯\_(ツ)_/¯ ok`, msgtype: chat.MsgTypeText},
		{name: "shrug alone", input: "/shrug", body: `¯\_(ツ)_/¯`, msgtype: chat.MsgTypeText},
		{name: "tableflip", input: "/tableflip", body: "(╯°□°）╯︵ ┻━┻", msgtype: chat.MsgTypeText},
		{name: "lenny", input: "/lenny hi", body: "( ͡° ͜ʖ ͡°) hi", msgtype: chat.MsgTypeText},
		{name: "escaped slash", input: "//notacommand", body: "/notacommand", msgtype: chat.MsgTypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			vm := h.build(t)

			require.True(t, vm.SendMessage(context.Background(), tt.input, ""))
			require.Len(t, h.room.sent, 1)
			require.Equal(t, tt.body, h.room.sent[0].content["body"])
			require.Equal(t, tt.msgtype, h.room.sent[0].content["msgtype"])
		})
	}
}

func TestSendMessage_UnknownCommand(t *testing.T) {
	h := newHarness(t)
	vm := h.build(t)

	require.False(t, vm.SendMessage(context.Background(), "/dance now", ""))

	require.Empty(t, h.room.sent)
	require.Contains(t, vm.Error(), `Something went wrong sending your message: no command name "dance"`)
	require.Contains(t, vm.Error(), `please type "//dance now"`)

	vm.DismissError()
	require.Empty(t, vm.Error())
}

func TestSendMessage_JoinCommand(t *testing.T) {
	h := newHarness(t)
	session := mocks.NewMockSession(t)
	session.EXPECT().JoinRoom(mock.Anything, "#lobby:parlor.local").Return("!lobby:parlor.local", nil).Once()
	h.nav.EXPECT().OpenRoom("!lobby:parlor.local").Once()
	cfg := h.config()
	cfg.Session = session
	vm := h.buildWith(t, cfg)

	require.True(t, vm.SendMessage(context.Background(), "/join #lobby:parlor.local", ""))
	require.Empty(t, h.room.sent)
	require.Empty(t, vm.Error())
}

func TestSendMessage_JoinSyntax(t *testing.T) {
	h := newHarness(t)
	vm := h.build(t)

	require.False(t, vm.SendMessage(context.Background(), "/join", ""))
	require.Equal(t, "Something went wrong sending your message: join syntax: /join <room-id>", vm.Error())
}

func TestSendMessage_JoinFailureReported(t *testing.T) {
	h := newHarness(t)
	session := mocks.NewMockSession(t)
	session.EXPECT().JoinRoom(mock.Anything, "#gone").Return("", errors.New("not found")).Once()
	h.errors.EXPECT().ReportError(mock.MatchedBy(func(err error) bool {
		return err.Error() == "join #gone: not found"
	})).Once()
	cfg := h.config()
	cfg.Session = session
	vm := h.buildWith(t, cfg)

	require.False(t, vm.SendMessage(context.Background(), "/join #gone", ""))
	require.Equal(t, "Something went wrong sending your message: join #gone: not found", vm.Error())
}

func TestSendMessage_FailureReportedAndReplacesTimelineError(t *testing.T) {
	h := newHarness(t)
	h.room.openErr = errors.New("no timeline")
	h.room.sendErr = errors.New("rate limited")
	h.errors.EXPECT().ReportError(h.room.openErr).Once()
	h.errors.EXPECT().ReportError(h.room.sendErr).Once()
	vm := h.build(t)
	vm.Load(context.Background())

	require.False(t, vm.SendMessage(context.Background(), "hi", ""))
	require.Equal(t, "Something went wrong sending your message: rate limited", vm.Error())
}

func TestSendFile(t *testing.T) {
	h := newHarness(t)
	blob := fakeBlob{mime: "application/pdf", data: []byte("%PDF")}
	h.platform.EXPECT().OpenFile(mock.Anything, "").Return(&chat.File{Name: "doc.pdf", Blob: blob}, nil).Once()
	vm := h.build(t)

	require.True(t, vm.SendFile(context.Background()))

	sent := h.room.sent[0]
	require.Equal(t, chat.MsgTypeFile, sent.content["msgtype"])
	require.Equal(t, map[string]any{"size": int64(4), "mimetype": "application/pdf"}, sent.content["info"])
	require.Equal(t, "doc.pdf", sent.attachments["url"].Name)
}

func TestSendFile_CancelledPicker(t *testing.T) {
	h := newHarness(t)
	h.platform.EXPECT().OpenFile(mock.Anything, "").Return(nil, nil).Once()
	vm := h.build(t)

	require.False(t, vm.SendFile(context.Background()))
	require.Empty(t, h.room.sent)
}

func TestSendImage_NeedsPixelPermission(t *testing.T) {
	h := newHarness(t)
	h.platform.EXPECT().HasReadPixelPermission().Return(false).Once()
	h.errors.EXPECT().ReportError(ErrNoPixelPermission).Once()
	vm := h.build(t)

	require.False(t, vm.SendImage(context.Background()))
}

func TestSendImage_NonImageFallsBackToFile(t *testing.T) {
	h := newHarness(t)
	h.platform.EXPECT().HasReadPixelPermission().Return(true).Once()
	h.platform.EXPECT().OpenFile(mock.Anything, "image/*").
		Return(&chat.File{Name: "notes.txt", Blob: fakeBlob{mime: "text/plain"}}, nil).Once()
	vm := h.build(t)

	require.True(t, vm.SendImage(context.Background()))
	require.Equal(t, chat.MsgTypeFile, h.room.sent[0].content["msgtype"])
}

func TestSendImage_ScalesToLimitAndAddsThumbnail(t *testing.T) {
	h := newHarness(t)
	blob := fakeBlob{mime: "image/png", data: []byte("png")}
	original := &fakeImage{w: 2000, h: 1000, blob: blob}
	h.platform.EXPECT().HasReadPixelPermission().Return(true).Once()
	h.platform.EXPECT().OpenFile(mock.Anything, "image/*").Return(&chat.File{Name: "cat.png", Blob: blob}, nil).Once()
	h.platform.EXPECT().LoadImage(mock.Anything, blob).Return(original, nil).Once()
	h.platform.EXPECT().SettingInt(mock.Anything, SettingSentImageSizeLimit).Return(1000, true, nil).Once()
	vm := h.build(t)

	require.True(t, vm.SendImage(context.Background()))

	require.Equal(t, []int{1000}, original.scaledTo)
	require.Equal(t, 1, original.disposed)

	sent := h.room.sent[0]
	require.Equal(t, chat.MsgTypeImage, sent.content["msgtype"])
	info := sent.content["info"].(map[string]any)
	require.Equal(t, 1000, info["w"])
	require.Equal(t, 500, info["h"])
	thumb := info["thumbnail_info"].(map[string]any)
	require.Equal(t, 400, thumb["w"])
	require.Contains(t, sent.attachments, "url")
	require.Contains(t, sent.attachments, "info.thumbnail_url")
}

func TestSendImage_SmallImageHasNoThumbnail(t *testing.T) {
	h := newHarness(t)
	blob := fakeBlob{mime: "image/jpeg"}
	img := &fakeImage{w: 300, h: 200, blob: blob}
	h.platform.EXPECT().HasReadPixelPermission().Return(true).Once()
	h.platform.EXPECT().OpenFile(mock.Anything, "image/*").Return(&chat.File{Name: "a.jpg", Blob: blob}, nil).Once()
	h.platform.EXPECT().LoadImage(mock.Anything, blob).Return(img, nil).Once()
	h.platform.EXPECT().SettingInt(mock.Anything, SettingSentImageSizeLimit).Return(0, false, nil).Once()
	vm := h.build(t)

	require.True(t, vm.SendImage(context.Background()))

	require.Empty(t, img.scaledTo)
	require.Equal(t, 1, img.disposed)
	require.NotContains(t, h.room.sent[0].attachments, "info.thumbnail_url")
}

func TestSendVideo(t *testing.T) {
	h := newHarness(t)
	blob := fakeBlob{mime: "video/mp4", data: []byte("mp4")}
	video := &fakeImage{w: 1920, h: 1080, blob: blob, duration: 3 * time.Second}
	h.platform.EXPECT().HasReadPixelPermission().Return(true).Once()
	h.platform.EXPECT().OpenFile(mock.Anything, "video/*").Return(&chat.File{Name: "clip.mp4", Blob: blob}, nil).Once()
	h.platform.EXPECT().LoadVideo(mock.Anything, blob).Return(video, nil).Once()
	h.platform.EXPECT().SettingInt(mock.Anything, SettingSentImageSizeLimit).Return(0, false, nil).Once()
	vm := h.build(t)

	require.True(t, vm.SendVideo(context.Background()))

	require.Equal(t, []int{800}, video.scaledTo)
	sent := h.room.sent[0]
	require.Equal(t, chat.MsgTypeVideo, sent.content["msgtype"])
	info := sent.content["info"].(map[string]any)
	require.Equal(t, int64(3000), info["duration"])
	require.Equal(t, 1920, info["w"])
	require.Contains(t, sent.attachments, "info.thumbnail_url")
}

func TestSendVideo_UsesSizeLimitForThumbnail(t *testing.T) {
	h := newHarness(t)
	blob := fakeBlob{mime: "video/webm"}
	video := &fakeImage{w: 640, h: 360, blob: blob}
	h.platform.EXPECT().HasReadPixelPermission().Return(true).Once()
	h.platform.EXPECT().OpenFile(mock.Anything, "video/*").Return(&chat.File{Name: "v.webm", Blob: blob}, nil).Once()
	h.platform.EXPECT().LoadVideo(mock.Anything, blob).Return(video, nil).Once()
	h.platform.EXPECT().SettingInt(mock.Anything, SettingSentImageSizeLimit).Return(320, true, nil).Once()
	vm := h.build(t)

	require.True(t, vm.SendVideo(context.Background()))
	require.Equal(t, []int{320}, video.scaledTo)
}

func TestSendVideo_LoadFailureReported(t *testing.T) {
	h := newHarness(t)
	blob := fakeBlob{mime: "video/mp4"}
	h.platform.EXPECT().HasReadPixelPermission().Return(true).Once()
	h.platform.EXPECT().OpenFile(mock.Anything, "video/*").Return(&chat.File{Name: "v.mp4", Blob: blob}, nil).Once()
	h.platform.EXPECT().LoadVideo(mock.Anything, blob).Return(nil, errors.New("codec")).Once()
	h.errors.EXPECT().ReportError(mock.MatchedBy(func(err error) bool {
		return err.Error() == "load video: codec"
	})).Once()
	vm := h.build(t)

	require.False(t, vm.SendVideo(context.Background()))
	require.Empty(t, h.room.sent)
}
