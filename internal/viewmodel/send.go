package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/parlor/internal/chat"
	"github.com/zjrosen/parlor/internal/log"
	"github.com/zjrosen/parlor/internal/tracing"
)

// SettingSentImageSizeLimit caps the largest dimension of sent images.
const SettingSentImageSizeLimit = "sentImageSizeLimit"

const (
	thumbnailThreshold    = 600
	thumbnailSize         = 400
	videoThumbnailMaxSize = 800
)

const (
	relatesToKey = "m.relates_to"
	inReplyToKey = "m.in_reply_to"
)

// Ascii art prefixed by the matching slash commands.
const (
	shrug     = `¯\_(ツ)_/¯`
	tableflip = "(╯°□°）╯︵ ┻━┻"
	lenny     = "( ͡° ͜ʖ ͡°)"
)

var (
	// ErrNoPixelPermission is reported when images cannot be read for scaling.
	ErrNoPixelPermission = errors.New("read pixel permission is required to scale media")
	// ErrJoinSyntax is the send error for a /join without exactly one argument.
	ErrJoinSyntax = errors.New("join syntax: /join <room-id>")
	// ErrNoSession is reported when /join is used without a session.
	ErrNoSession = errors.New("joining rooms is not available")
)

// SendMessage sends message, processing slash commands. replyingTo is the
// event id being replied to, or "". It returns false without reporting when
// the room is archived or the message is empty.
func (vm *RoomViewModel) SendMessage(ctx context.Context, message, replyingTo string) bool {
	if vm.room.IsArchived() || message == "" {
		return false
	}
	return vm.run(ctx, "sendMessage", func(ctx context.Context) (bool, error) {
		msgtype := chat.MsgTypeText
		switch {
		case strings.HasPrefix(message, "//"):
			message = message[1:]
		case strings.HasPrefix(message, "/"):
			var handled bool
			var err error
			message, msgtype, handled, err = vm.processCommand(ctx, message)
			if handled {
				return err == nil && message == "", err
			}
		}
		if message == "" {
			return false, nil
		}

		content := chat.Content{"msgtype": msgtype, "body": message}
		if replyingTo != "" {
			content[relatesToKey] = map[string]any{
				inReplyToKey: map[string]any{"event_id": replyingTo},
			}
		}
		trace.SpanFromContext(ctx).SetAttributes(attribute.String(tracing.AttrMsgType, msgtype))
		if err := vm.room.SendEvent(ctx, chat.EventTypeMessage, content, nil); err != nil {
			vm.setSendError(err)
			return false, err
		}
		return true, nil
	})
}

// processCommand expands a slash command. When handled is true the command
// ran by itself and nothing should be sent; an empty body then means it succeeded.
func (vm *RoomViewModel) processCommand(ctx context.Context, message string) (body, msgtype string, handled bool, err error) {
	name, rest, _ := strings.Cut(message[1:], " ")
	args := strings.Fields(rest)
	log.Debug(log.CatComposer, "Slash command", "command", name, "args", len(args))

	switch name {
	case "me":
		return rest, chat.MsgTypeEmote, false, nil
	case "shrug":
		return strings.TrimSpace(shrug + " " + rest), chat.MsgTypeText, false, nil
	case "tableflip":
		return strings.TrimSpace(tableflip + " " + rest), chat.MsgTypeText, false, nil
	case "lenny":
		return strings.TrimSpace(lenny + " " + rest), chat.MsgTypeText, false, nil
	case "join":
		if len(args) != 1 {
			vm.setSendError(ErrJoinSyntax)
			return message, "", true, nil
		}
		if err := vm.joinRoom(ctx, args[0]); err != nil {
			vm.setSendError(err)
			return message, "", true, err
		}
		return "", "", true, nil
	default:
		vm.setSendError(fmt.Errorf("no command name %q. To send the message instead of executing, please type \"/%s\"", name, message))
		return message, "", true, nil
	}
}

func (vm *RoomViewModel) joinRoom(ctx context.Context, idOrAlias string) error {
	if vm.session == nil {
		return ErrNoSession
	}
	roomID, err := vm.session.JoinRoom(ctx, idOrAlias)
	if err != nil {
		return fmt.Errorf("join %s: %w", idOrAlias, err)
	}
	if vm.navigator != nil {
		vm.navigator.OpenRoom(roomID)
	}
	return nil
}

// SendFile asks the platform for any file and sends it.
func (vm *RoomViewModel) SendFile(ctx context.Context) bool {
	if vm.room.IsArchived() {
		return false
	}
	return vm.run(ctx, "sendFile", func(ctx context.Context) (bool, error) {
		file, err := vm.platform.OpenFile(ctx, "")
		if err != nil || file == nil {
			return false, err
		}
		return vm.sendFile(ctx, file)
	})
}

func (vm *RoomViewModel) sendFile(ctx context.Context, file *chat.File) (bool, error) {
	content := chat.Content{
		"body":    file.Name,
		"msgtype": chat.MsgTypeFile,
		"info": map[string]any{
			"size":     file.Blob.Size(),
			"mimetype": file.Blob.MimeType(),
		},
	}
	attachments := chat.Attachments{
		"url": vm.room.CreateAttachment(file.Blob, file.Name),
	}
	return vm.send(ctx, content, attachments)
}

// SendImage asks the platform for an image, scales it down to the configured
// limit, adds a thumbnail for large images and sends it. Files that are not
// images are sent as plain files.
func (vm *RoomViewModel) SendImage(ctx context.Context) bool {
	if vm.room.IsArchived() {
		return false
	}
	return vm.run(ctx, "sendPicture", func(ctx context.Context) (bool, error) {
		if !vm.platform.HasReadPixelPermission() {
			return false, ErrNoPixelPermission
		}
		file, err := vm.platform.OpenFile(ctx, "image/*")
		if err != nil || file == nil {
			return false, err
		}
		trace.SpanFromContext(ctx).SetAttributes(attribute.String(tracing.AttrMimeType, file.Blob.MimeType()))
		if !strings.HasPrefix(file.Blob.MimeType(), "image/") {
			return vm.sendFile(ctx, file)
		}

		image, err := vm.platform.LoadImage(ctx, file.Blob)
		if err != nil {
			return false, fmt.Errorf("load image: %w", err)
		}
		defer func() { image.Dispose() }()

		limit, hasLimit, err := vm.platform.SettingInt(ctx, SettingSentImageSizeLimit)
		if err != nil {
			return false, fmt.Errorf("read %s: %w", SettingSentImageSizeLimit, err)
		}
		if hasLimit && limit > 0 && image.MaxDimension() > limit {
			scaled, err := image.Scale(ctx, limit)
			if err != nil {
				return false, fmt.Errorf("scale image: %w", err)
			}
			image.Dispose()
			image = scaled
		}

		info := imageInfo(image)
		attachments := chat.Attachments{
			"url": vm.room.CreateAttachment(image.Blob(), file.Name),
		}
		if image.MaxDimension() > thumbnailThreshold {
			thumb, err := image.Scale(ctx, thumbnailSize)
			if err != nil {
				return false, fmt.Errorf("scale thumbnail: %w", err)
			}
			defer thumb.Dispose()
			info["thumbnail_info"] = imageInfo(thumb)
			attachments["info.thumbnail_url"] = vm.room.CreateAttachment(thumb.Blob(), file.Name)
		}

		content := chat.Content{"body": file.Name, "msgtype": chat.MsgTypeImage, "info": info}
		return vm.send(ctx, content, attachments)
	})
}

// SendVideo asks the platform for a video and sends it with a thumbnail.
// Files that are not videos are sent as plain files.
func (vm *RoomViewModel) SendVideo(ctx context.Context) bool {
	if vm.room.IsArchived() {
		return false
	}
	return vm.run(ctx, "sendVideo", func(ctx context.Context) (bool, error) {
		if !vm.platform.HasReadPixelPermission() {
			return false, ErrNoPixelPermission
		}
		file, err := vm.platform.OpenFile(ctx, "video/*")
		if err != nil || file == nil {
			return false, err
		}
		trace.SpanFromContext(ctx).SetAttributes(attribute.String(tracing.AttrMimeType, file.Blob.MimeType()))
		if !strings.HasPrefix(file.Blob.MimeType(), "video/") {
			return vm.sendFile(ctx, file)
		}

		video, err := vm.platform.LoadVideo(ctx, file.Blob)
		if err != nil {
			return false, fmt.Errorf("load video: %w", err)
		}
		defer video.Dispose()

		info := imageInfo(video)
		info["duration"] = video.Duration().Milliseconds()
		attachments := chat.Attachments{
			"url": vm.room.CreateAttachment(video.Blob(), file.Name),
		}

		limit, hasLimit, err := vm.platform.SettingInt(ctx, SettingSentImageSizeLimit)
		if err != nil {
			return false, fmt.Errorf("read %s: %w", SettingSentImageSizeLimit, err)
		}
		maxDimension := min(video.MaxDimension(), videoThumbnailMaxSize)
		if hasLimit && limit > 0 {
			maxDimension = limit
		}
		thumb, err := video.Scale(ctx, maxDimension)
		if err != nil {
			return false, fmt.Errorf("scale thumbnail: %w", err)
		}
		defer thumb.Dispose()
		info["thumbnail_info"] = imageInfo(thumb)
		attachments["info.thumbnail_url"] = vm.room.CreateAttachment(thumb.Blob(), file.Name)

		content := chat.Content{"body": file.Name, "msgtype": chat.MsgTypeVideo, "info": info}
		return vm.send(ctx, content, attachments)
	})
}

func (vm *RoomViewModel) send(ctx context.Context, content chat.Content, attachments chat.Attachments) (bool, error) {
	if err := vm.room.SendEvent(ctx, chat.EventTypeMessage, content, attachments); err != nil {
		vm.setSendError(err)
		return false, err
	}
	log.Debug(log.CatMedia, "Sent media", "room", vm.room.ID(), "msgtype", content["msgtype"])
	return true, nil
}

func imageInfo(img chat.Image) map[string]any {
	blob := img.Blob()
	return map[string]any{
		"w":        img.Width(),
		"h":        img.Height(),
		"mimetype": blob.MimeType(),
		"size":     blob.Size(),
	}
}
