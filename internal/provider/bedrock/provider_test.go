package bedrock

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/require"

	"chatgw/internal/model"
)

func TestBuildConverseMessages(t *testing.T) {
	messages := []model.Message{
		{Role: "user", Content: "look at this", Attachments: []model.Attachment{
			{Name: "pic.png", MimeType: "image/png", DataURL: "data:image/png;base64,aGVsbG8="},
			{Name: "doc.pdf", MimeType: "application/pdf", DataURL: "data:application/pdf;base64,JVBERi0x"},
		}},
		{Role: "assistant", Content: "a picture and a document"},
	}

	converseMessages, err := buildConverseMessages(messages)
	require.NoError(t, err)
	require.Len(t, converseMessages, 2)

	user := converseMessages[0]
	require.Equal(t, types.ConversationRoleUser, user.Role)
	require.Len(t, user.Content, 3)

	text, ok := user.Content[0].(*types.ContentBlockMemberText)
	require.True(t, ok)
	require.Equal(t, "look at this", text.Value)

	image, ok := user.Content[1].(*types.ContentBlockMemberImage)
	require.True(t, ok)
	require.Equal(t, types.ImageFormatPng, image.Value.Format)
	source, ok := image.Value.Source.(*types.ImageSourceMemberBytes)
	require.True(t, ok)
	require.Equal(t, []byte("hello"), source.Value)

	document, ok := user.Content[2].(*types.ContentBlockMemberDocument)
	require.True(t, ok)
	require.Equal(t, types.DocumentFormatPdf, document.Value.Format)
	require.Equal(t, "doc.pdf", aws.ToString(document.Value.Name))

	assistant := converseMessages[1]
	require.Equal(t, types.ConversationRoleAssistant, assistant.Role)
	require.Len(t, assistant.Content, 1)
}

func TestBuildConverseMessagesRejectsMimeMismatch(t *testing.T) {
	messages := []model.Message{
		{Role: "user", Content: "x", Attachments: []model.Attachment{
			{Name: "pic.png", MimeType: "image/png", DataURL: "data:image/jpeg;base64,aGVsbG8="},
		}},
	}

	_, err := buildConverseMessages(messages)
	require.Error(t, err)
	require.True(t, model.IsBadRequest(err))
}

func TestBuildAttachmentBlockDefaultsDocumentName(t *testing.T) {
	block, err := buildAttachmentBlock(&model.Attachment{
		MimeType: "application/pdf",
		DataURL:  "data:application/pdf;base64,JVBERi0x",
	})
	require.NoError(t, err)

	document, ok := block.(*types.ContentBlockMemberDocument)
	require.True(t, ok)
	require.Equal(t, "document", aws.ToString(document.Value.Name))
}

func TestExtractText(t *testing.T) {
	resp := &bedrockruntime.ConverseOutput{
		Output: &types.ConverseOutputMemberMessage{
			Value: types.Message{
				Role: types.ConversationRoleAssistant,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: "first "},
					&types.ContentBlockMemberText{Value: "second"},
				},
			},
		},
	}
	require.Equal(t, "first second", extractText(resp))
}

func TestExtractTextEmptyOutput(t *testing.T) {
	require.Equal(t, "", extractText(&bedrockruntime.ConverseOutput{}))
}
