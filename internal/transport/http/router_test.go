package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sc-Mae/squad-service/internal/repository/memory"
	"github.com/Sc-Mae/squad-service/internal/transport/http/dto"
	"github.com/Sc-Mae/squad-service/internal/transport/http/handler"
	"github.com/Sc-Mae/squad-service/internal/usecase"
)

const testAdminToken = "test_admin_token"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.NewStore()
	squadRepo := memory.NewSquadRepository(store)
	memberRepo := memory.NewMemberRepository(store)
	statsRepo := memory.NewStatisticsRepository(store)
	txManager := memory.NewTransactionManager()

	squadUseCase := usecase.NewSquadUseCase(squadRepo, memberRepo, txManager)
	memberUseCase := usecase.NewMemberUseCase(memberRepo, squadRepo)
	statsUseCase := usecase.NewStatisticsUseCase(statsRepo)
	exportUseCase := usecase.NewExportUseCase(squadUseCase)

	router := NewRouter(RouterConfig{
		SquadHandler:      handler.NewSquadHandler(squadUseCase),
		MemberHandler:     handler.NewMemberHandler(memberUseCase),
		StatisticsHandler: handler.NewStatisticsHandler(statsUseCase),
		ExportHandler:     handler.NewExportHandler(exportUseCase),
		HealthHandler:     handler.NewHealthHandler(),
		AdminToken:        testAdminToken,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func createTestSquad(t *testing.T, srv *httptest.Server) dto.CreateSquadResponse {
	t.Helper()

	req := dto.CreateSquadRequest{
		SquadName:  "Super Hero Squad",
		HomeTown:   "Metro City",
		Formed:     2016,
		Status:     "active",
		SecretBase: "Super tower",
		Active:     true,
		Members: []dto.MemberDTO{
			{Name: "Molecule Man", Age: 29, SecretIdentity: "Dan Jukes", Powers: []string{"Radiation resistance"}},
		},
	}

	resp := doJSON(t, http.MethodPost, srv.URL+"/squad/add", req, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.CreateSquadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateAndGetSquad(t *testing.T) {
	srv := newTestServer(t)

	created := createTestSquad(t, srv)
	assert.Equal(t, "Super Hero Squad", created.Squad.SquadName)
	require.Len(t, created.Squad.Members, 1)
	assert.NotEmpty(t, created.Squad.Members[0].MemberID)

	resp, err := http.Get(srv.URL + "/squad/get?squad_name=Super+Hero+Squad")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var squad dto.SquadDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&squad))
	assert.Equal(t, "Metro City", squad.HomeTown)
	assert.Len(t, squad.Members, 1)
}

func TestCreateSquad_Duplicate(t *testing.T) {
	srv := newTestServer(t)

	createTestSquad(t, srv)

	req := dto.CreateSquadRequest{
		SquadName:  "Super Hero Squad",
		HomeTown:   "Metro City",
		Formed:     2016,
		SecretBase: "Super tower",
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/squad/add", req, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "SQUAD_EXISTS", errResp.Error.Code)
}

func TestGetSquad_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/squad/get?squad_name=Missing")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Error.Code)
}

func TestImportSquads(t *testing.T) {
	srv := newTestServer(t)

	doc := `[{
		"squadName": "Imported Squad",
		"homeTown": "Import Town",
		"formed": 2005,
		"secretBase": "Hidden",
		"members": [
			{"name": "Hero", "age": 33, "secretIdentity": "Nobody", "powers": ["Flight"]}
		]
	}]`

	resp, err := http.Post(srv.URL+"/squad/import", "application/json", bytes.NewBufferString(doc))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var imported dto.ImportSquadsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&imported))
	assert.Equal(t, 1, imported.ImportedSquads)
}

func TestImportSquads_ParseError(t *testing.T) {
	srv := newTestServer(t)

	doc := `[{"homeTown": "No Name Town", "formed": 2005, "secretBase": "Hidden", "members": []}]`

	resp, err := http.Post(srv.URL+"/squad/import", "application/json", bytes.NewBufferString(doc))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "PARSE_ERROR", errResp.Error.Code)
}

func TestMemberLifecycle(t *testing.T) {
	srv := newTestServer(t)

	createTestSquad(t, srv)

	// Добавляем участника
	addReq := dto.AddMemberRequest{
		SquadName: "Super Hero Squad",
		Member: dto.MemberDTO{
			Name:           "Ironman",
			Age:            41,
			SecretIdentity: "Tony Stark",
			Powers:         []string{"Fighting", "Lasers"},
		},
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/squad/members/add", addReq, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var added dto.AddMemberResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&added))
	resp.Body.Close()
	require.NotEmpty(t, added.MemberID)

	// Участник виден в списке ровно один раз, в конце
	listResp, err := http.Get(srv.URL + "/squad/members/list?squad_name=Super+Hero+Squad")
	require.NoError(t, err)
	var list dto.ListMembersResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	listResp.Body.Close()

	require.Len(t, list.Members, 2)
	assert.Equal(t, added.MemberID, list.Members[1].MemberID)
	assert.Equal(t, "Ironman", list.Members[1].Name)

	// Удаление требует админский токен
	removeReq := dto.RemoveMemberRequest{MemberID: added.MemberID}
	resp = doJSON(t, http.MethodPost, srv.URL+"/squad/members/remove", removeReq, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/squad/members/remove", removeReq, testAdminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var removed dto.RemoveMemberResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&removed))
	resp.Body.Close()
	assert.True(t, removed.Removed)

	// Участника больше нет в списке
	listResp, err = http.Get(srv.URL + "/squad/members/list?squad_name=Super+Hero+Squad")
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	listResp.Body.Close()

	require.Len(t, list.Members, 1)
	assert.NotEqual(t, added.MemberID, list.Members[0].MemberID)
}

func TestRemoveMember_NotFound(t *testing.T) {
	srv := newTestServer(t)

	removeReq := dto.RemoveMemberRequest{MemberID: "00000000-0000-0000-0000-000000000000"}
	resp := doJSON(t, http.MethodPost, srv.URL+"/squad/members/remove", removeReq, testAdminToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Error.Code)
}

func TestAddMember_ValidationError(t *testing.T) {
	srv := newTestServer(t)

	createTestSquad(t, srv)

	addReq := dto.AddMemberRequest{
		SquadName: "Super Hero Squad",
		Member: dto.MemberDTO{
			Name: "No Identity",
			Age:  30,
			// secretIdentity и powers отсутствуют
		},
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/squad/members/add", addReq, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "INVALID_INPUT", errResp.Error.Code)
}

func TestStatistics(t *testing.T) {
	srv := newTestServer(t)

	createTestSquad(t, srv)

	resp, err := http.Get(srv.URL + "/statistics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.EqualValues(t, 1, stats["total_squads"])
	assert.EqualValues(t, 1, stats["total_members"])
}

func TestExportSquadsXML(t *testing.T) {
	srv := newTestServer(t)

	createTestSquad(t, srv)

	resp, err := http.Get(srv.URL + "/squads/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<squadName>Super Hero Squad</squadName>")
}
