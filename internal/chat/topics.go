package chat

// SummaryTitle heads the structured document returned for summary requests.
const SummaryTitle = "Sumário: Modelos de Atos e Documentos de PAD"

// topicSummary lists every document model covered by the knowledge base. It
// is returned verbatim when the user asks what the assistant knows, instead
// of hoping retrieval stitches an overview together.
const topicSummary = `1. Portaria instauradora de processo administrativo disciplinar e sindicância contraditória
2. Requerimento de substituição de membro
3. Portaria de substituição de membro
4. Requerimento de prorrogação de prazo à autoridade instauradora
5. Portaria de prorrogação de prazo para conclusão dos trabalhos da comissão processante
6. Portaria de recondução da comissão processante
7. Portaria instauradora conjunta de processo administrativo disciplinar e sindicância contraditória
8. Ata de instalação e deliberações da comissão processante
9. Portaria de designação do secretário
10. Termo de compromisso do secretário não integrante da comissão
11. Portaria de designação do secretário ad hoc
12. Termo de compromisso do secretário ad hoc
13. Comunicação da instalação à autoridade instauradora
14. Comunicação da instalação ao órgão de recursos humanos/gestão de pessoas e solicitação de cópia dos assentamentos funcionais do acusado
15. Comunicação da instalação ao chefe imediato do acusado
16. Ata de reunião deliberativa
17. Intimação do acusado/procurador acerca da ata deliberativa
18. Ata deliberativa sujeita ao ad referendum dos membros da comissão processante
19. Ata deliberativa de ratificação
20. Notificação prévia
21. Termo de vista e cópia dos autos
22. Carta precatória requerendo a prática de ato (genérica)
23. Intimação do acusado/procurador para acompanhar os atos instrutórios
24. Intimação do acusado/procurador para acompanhar oitiva de testemunha
25. Intimação de testemunha
26. Comunicação ao chefe da repartição onde serve a testemunha
27. Solicitação de comparecimento de autoridade para depor como testemunha
28. Termo de oitiva de testemunha
29. Termo de não comparecimento de testemunha
30. Comunicação de não comparecimento de testemunha servidor público ao chefe imediato
31. Certidão de comparecimento de testemunha
32. Termo de oitiva de testemunha a distância (videoconferência)
33. Carta precatória para oitiva de testemunha e anexo com formulação de perguntas
34. Intimação do acusado/procurador informando oitiva de testemunha por carta precatória
35. Solicitação de comparecimento de informante
36. Termo de oitiva de informante
37. Termo de oitiva com contradita à testemunha
38. Termo de acareação
39. Ofício solicitando documentos
40. Requerimento da comissão processante à autoridade fiscal
41. Requerimento da comissão processante ao responsável da instituição financeira
42. Requerimento da comissão processante solicitando à Advocacia-Geral da União o afastamento do sigilo bancário
43. Requerimento de designação de perito à autoridade instauradora
44. Portaria de designação de perito
45. Termo de compromisso de perito
46. Intimação do acusado/procurador para apresentar quesitos
47. Intimação do acusado/procurador para ciência das conclusões da perícia
48. Portaria de designação de assistente técnico
49. Termo de diligência
50. Intimação do acusado/procurador para acompanhar diligência
51. Comunicação ao chefe da repartição na qual será realizada a diligência
52. Intimação do acusado/procurador informando acerca da realização da diligência
53. Intimação do acusado/procurador para dizer se ainda resta alguma prova a ser produzida
54. Despacho de saneamento
55. Intimação do acusado para interrogatório
56. Intimação do procurador acerca do interrogatório
57. Comunicação ao chefe imediato do acusado acerca do interrogatório
58. Termo de interrogatório
59. Certidão de comparecimento ao interrogatório
60. Termo de não comparecimento ao interrogatório
61. Ata de encerramento de instrução (absolvição sumária)
62. Ata de encerramento de instrução (indiciação)
63. Termo de indiciação
64. Mandado de citação
65. Citação por carta precatória
66. Portaria de designação do secretário ad hoc para promover a citação
67. Termo de diligências para localização do indiciado
68. Ata de deliberação decidindo pela citação por edital
69. Citação por edital
70. Termo de recusa de recebimento de citação
71. Diligências - citação por hora certa
72. Mandado de citação por hora certa
73. Comunicação de citação por hora certa
74. Mandado de citação dirigido ao procurador do indiciado
75. Termo de revelia
76. Solicitação de designação de defensor dativo
77. Portaria de designação de defensor dativo
78. Relatório final
79. Ofício de remessa dos autos à autoridade instauradora
80. Julgamento pelo arquivamento dos autos do processo
81. Julgamento pela aplicação de penalidade
82. Portaria de aplicação de penalidade
83. Julgamento pela impossibilidade de aplicar penalidade
84. Julgamento pela declaração de nulidade total ou parcial do processo e necessidade de refazimento dos trabalhos da comissão processante
85. Conversão do julgamento em diligência
86. Requerimento da comissão processante de instauração de incidente de sanidade mental
87. Solicitação da autoridade instauradora de perícia médica ao órgão de serviço de saúde
88. Intimação ao acusado/procurador informando a instauração de incidente de sanidade mental
89. Requerimento da comissão processante de afastamento preventivo do acusado
90. Portaria de afastamento preventivo
91. Intimação do acusado informando o afastamento preventivo
92. Comunicação ao chefe imediato do acusado acerca do afastamento preventivo
93. Portaria instauradora de sindicância investigativa
94. Termo de opção - acumulação ilegal de cargos
95. Portaria instauradora - acumulação ilegal de cargos
96. Portaria instauradora - abandono de cargo
97. Portaria instauradora - inassiduidade habitual`
